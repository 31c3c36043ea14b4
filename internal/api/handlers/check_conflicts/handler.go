package check_conflicts

import (
	"errors"
	"net/http"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
	checkConflicts "github.com/mabani-platform/MBN-BookingService/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgInvalidServiceType = "неизвестный тип услуги"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-conflicts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/check-conflicts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidServiceType):
			h.logger.Warn("POST /bookings/check-conflicts - Invalid service type: %s", req.ServiceType)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		case errors.Is(err, checkConflicts.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check-conflicts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/check-conflicts - Failed to check conflicts: project_id=%s, error=%v",
				req.ProjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/check-conflicts - Checked: project_id=%s, conflicts=%d",
		req.ProjectID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
