package sync_timeline

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
)

const (
	msgMissingProjectID = "не указан идентификатор проекта"
)

type Handler struct {
	useCase SyncTimelineUseCase
	logger  Logger
}

func NewHandler(useCase SyncTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/timeline-sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	if projectID == "" {
		h.logger.Warn("GET /projects/{projectId}/timeline-sync - Missing project id")
		handlers.RespondBadRequest(w, msgMissingProjectID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), projectID)
	if err != nil {
		h.logger.Error("GET /projects/{projectId}/timeline-sync - Failed to sync timeline: project_id=%s, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{projectId}/timeline-sync - Synced: project_id=%s, adjustments=%d",
		projectID, len(result.Adjustments))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
