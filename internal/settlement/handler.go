package settlement

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amehta/splitledger/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group-scoped settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/{groupID}/settlements/recompute", h.Recompute)
	r.Get("/{groupID}/settlements", h.List)
	r.Get("/{groupID}/balances", h.NetBalances)

	return r
}

// Recompute handles POST /groups/{groupID}/settlements/recompute
// @Summary      Recompute a group's settlements
// @Description  Replace the stored settlement set with a freshly minimized one derived from the group's obligations
// @Tags         settlements
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /groups/{groupID}/settlements/recompute [post]
func (h *Handler) Recompute(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	settlements, err := h.service.Recompute(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to recompute settlements")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(settlements))
}

// List handles GET /groups/{groupID}/settlements
// @Summary      List a group's stored settlements
// @Tags         settlements
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /groups/{groupID}/settlements [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	settlements, err := h.service.ListByGroupID(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	response.JSON(w, http.StatusOK, toResponses(settlements))
}

// NetBalances handles GET /groups/{groupID}/balances
// @Summary      Get a group's net balances
// @Description  Signed net position per participant; positive is owed, negative owes
// @Tags         settlements
// @Produce      json
// @Param        groupID path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]NetBalanceResponse}
// @Router       /groups/{groupID}/balances [get]
func (h *Handler) NetBalances(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	balances, err := h.service.NetBalances(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to get net balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

func toResponses(settlements []*Settlement) []*SettlementResponse {
	responses := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		responses[i] = s.ToResponse()
	}
	return responses
}
