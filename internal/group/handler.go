package group

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitta/splitta/pkg/middleware"
	"github.com/splitta/splitta/pkg/response"
	"github.com/splitta/splitta/pkg/validate"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service

	// Sub-resource handlers mounted under /groups/{id}
	listExpenses    http.HandlerFunc
	listSettlements http.HandlerFunc
}

// NewHandler creates a new group handler. The expense and settlement list
// handlers are mounted here so group sub-resources live under one router.
func NewHandler(service *Service, listExpenses, listSettlements http.HandlerFunc) *Handler {
	return &Handler{service: service, listExpenses: listExpenses, listSettlements: listSettlements}
}

// Routes returns the router for group endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Post("/{id}/members", h.AddMember)
	r.Delete("/{id}/members/{userID}", h.RemoveMember)

	r.Get("/{id}/balances", h.Balances)
	r.Get("/{id}/debts", h.Debts)
	r.Get("/{id}/expenses", h.listExpenses)
	r.Get("/{id}/settlements", h.listSettlements)

	return r
}

// Create handles POST /groups
// @Summary      Create a new group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} response.APIResponse{data=GroupResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authenticated user")
		return
	}

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, members, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalError(w, "Failed to create group")
		return
	}

	response.JSON(w, http.StatusCreated, g.ToResponse(members))
}

// ListMine handles GET /groups
// @Summary      List the authenticated user's groups
// @Tags         groups
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]GroupResponse}
// @Router       /groups [get]
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing authenticated user")
		return
	}

	groups, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list groups")
		return
	}

	groupResponses := make([]*GroupResponse, len(groups))
	for i, g := range groups {
		groupResponses[i] = g.ToResponse(nil)
	}

	response.JSON(w, http.StatusOK, groupResponses)
}

// GetByID handles GET /groups/{id}
// @Summary      Get group by ID
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	g, members, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get group")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse(members))
}

// Update handles PATCH /groups/{id}
// @Summary      Update a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body UpdateGroupRequest true "Group update request"
// @Success      200 {object} response.APIResponse{data=GroupResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update group")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse(nil))
}

// Delete handles DELETE /groups/{id}
// @Summary      Delete a group
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete group")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Group deleted successfully"})
}

// AddMember handles POST /groups/{id}/members
// @Summary      Add a member to a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body AddMemberRequest true "Member addition request"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/members [post]
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.service.AddMember(r.Context(), chi.URLParam(r, "id"), req.UserID); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add member")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member added successfully"})
}

// RemoveMember handles DELETE /groups/{id}/members/{userID}
// @Summary      Remove a member from a group
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        userID path string true "User ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/members/{userID} [delete]
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove member")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member removed successfully"})
}

// Balances handles GET /groups/{id}/balances
// @Summary      Get group balances
// @Description  Recomputes each member's net position from all expenses, splits and active settlements
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        user query string false "Return only this member's net position"
// @Success      200 {object} response.APIResponse{data=[]ledger.Balance}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	if userID := r.URL.Query().Get("user"); userID != "" {
		amount, err := h.service.UserBalance(r.Context(), groupID, userID)
		if err != nil {
			if errors.Is(err, ErrGroupNotFound) {
				response.NotFound(w, err.Error())
				return
			}
			response.InternalError(w, "Failed to calculate balance")
			return
		}
		response.JSON(w, http.StatusOK, map[string]any{"user_id": userID, "amount": amount})
		return
	}

	balances, err := h.service.Balances(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to calculate balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// Debts handles GET /groups/{id}/debts
// @Summary      Get netted pairwise debts
// @Description  Returns who owes whom after netting both directions of every member pair; pass ?user= to partition by one member
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        user query string false "Filter debts involving this user"
// @Success      200 {object} response.APIResponse{data=DebtsResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/debts [get]
func (h *Handler) Debts(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	if userID := r.URL.Query().Get("user"); userID != "" {
		iOwe, oweMe, err := h.service.DebtsForUser(r.Context(), groupID, userID)
		if err != nil {
			if errors.Is(err, ErrGroupNotFound) {
				response.NotFound(w, err.Error())
				return
			}
			response.InternalError(w, "Failed to calculate debts")
			return
		}
		response.JSON(w, http.StatusOK, &DebtsResponse{IOwe: iOwe, OweMe: oweMe})
		return
	}

	debts, err := h.service.Debts(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to calculate debts")
		return
	}

	response.JSON(w, http.StatusOK, &DebtsResponse{Debts: debts})
}
