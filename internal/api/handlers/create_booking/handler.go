package create_booking

import (
	"errors"
	"net/http"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
	createBooking "github.com/mabani-platform/MBN-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgBookingConflict    = "запрошенный интервал пересекается с существующими бронированиями"
	msgProviderNotFound   = "поставщик услуг не найден"
	msgInvalidServiceType = "неизвестный тип услуги"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBookingConflict):
			h.logger.Warn("POST /bookings - Conflict: project_id=%s, date=%s", req.ProjectID, req.ScheduledDate)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, createBooking.ErrProviderNotFound):
			h.logger.Warn("POST /bookings - Provider not found: provider_id=%s", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createBooking.ErrInvalidServiceType):
			h.logger.Warn("POST /bookings - Invalid service type: %s", req.ServiceType)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: project_id=%s, date=%s", req.ProjectID, req.ScheduledDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: project_id=%s, error=%v", req.ProjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, project_id=%s",
		result.Booking.ID, req.ProjectID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
