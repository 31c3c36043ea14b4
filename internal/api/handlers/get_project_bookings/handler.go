package get_project_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
)

const (
	msgMissingProjectID = "не указан идентификатор проекта"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	if projectID == "" {
		h.logger.Warn("GET /projects/{projectId}/bookings - Missing project id")
		handlers.RespondBadRequest(w, msgMissingProjectID)
		return
	}

	result, err := h.service.GetByProject(r.Context(), projectID)
	if err != nil {
		h.logger.Error("GET /projects/{projectId}/bookings - Failed to fetch bookings: project_id=%s, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{projectId}/bookings - Fetched %d bookings: project_id=%s",
		len(result.Bookings), projectID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
