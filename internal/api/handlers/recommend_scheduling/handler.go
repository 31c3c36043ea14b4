package recommend_scheduling

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
)

const (
	msgMissingProjectID = "не указан идентификатор проекта"
)

type Handler struct {
	useCase RecommendSchedulingUseCase
	logger  Logger
}

func NewHandler(useCase RecommendSchedulingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/scheduling-recommendations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]
	if projectID == "" {
		h.logger.Warn("GET /projects/{projectId}/scheduling-recommendations - Missing project id")
		handlers.RespondBadRequest(w, msgMissingProjectID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), projectID)
	if err != nil {
		h.logger.Error("GET /projects/{projectId}/scheduling-recommendations - Failed: project_id=%s, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{projectId}/scheduling-recommendations - Built %d recommendations: project_id=%s",
		len(result.Recommendations), projectID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
