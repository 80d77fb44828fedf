package summary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitta/splitta/pkg/middleware"
	"github.com/splitta/splitta/pkg/response"
)

// Handler handles HTTP requests for the summary endpoint
type Handler struct {
	service *Service
}

// NewHandler creates a new summary handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for summary endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ForUser)
	return r
}

// ForUser handles GET /summary
// @Summary      Get the authenticated user's cross-group summary
// @Description  Totals what the user owes and is owed, overall and per group
// @Tags         summary
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ledger.GlobalSummary}
// @Failure      401 {object} response.APIResponse
// @Router       /summary [get]
func (h *Handler) ForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authenticated user")
		return
	}

	s, err := h.service.ForUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to compute summary")
		return
	}

	response.JSON(w, http.StatusOK, s)
}
