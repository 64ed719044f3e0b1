package handler

import (
	"log/slog"
	"net/http"

	"github.com/ankitpatil/disha/internal/domain"
)

// PlanHandler serves the static plan catalog.
type PlanHandler struct {
	logger *slog.Logger
}

// NewPlanHandler creates a plan handler.
func NewPlanHandler(logger *slog.Logger) *PlanHandler {
	return &PlanHandler{logger: logger}
}

// RegisterRoutes registers plan routes on the mux.
func (h *PlanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/plans", h.listPlans)
}

// planView is a catalog entry plus its locale-formatted price.
type planView struct {
	domain.PlanDetails
	DisplayPrice string `json:"display_price"`
}

func (h *PlanHandler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans := make([]planView, 0, len(domain.Catalog))
	for _, p := range domain.Catalog {
		plans = append(plans, planView{PlanDetails: p, DisplayPrice: p.DisplayPrice()})
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"plans": plans})
}
