package manage_conflicts

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
)

const (
	msgMissingProjectID = "не указан идентификатор проекта"
)

type Handler struct {
	useCase ResolveConflictsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	if projectID == "" {
		h.logger.Warn("GET /projects/{projectId}/conflicts - Missing project id")
		handlers.RespondBadRequest(w, msgMissingProjectID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), projectID)
	if err != nil {
		h.logger.Error("GET /projects/{projectId}/conflicts - Failed to resolve conflicts: project_id=%s, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{projectId}/conflicts - Found %d conflicts: project_id=%s",
		len(result.Resolutions), projectID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, time.Now()))
}
