package handler

import (
	"log/slog"
	"net/http"

	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/events"
)

// SubscriptionHandler exposes the user's subscription and feature gates.
type SubscriptionHandler struct {
	engine    *entitlement.Engine
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewSubscriptionHandler creates a subscription handler.
func NewSubscriptionHandler(engine *entitlement.Engine, publisher *events.Publisher, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		engine:    engine,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterRoutes registers subscription and feature-gate routes on the mux,
// all behind requireAuth.
func (h *SubscriptionHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/subscription", requireAuth(http.HandlerFunc(h.getSubscription)))
	mux.Handle("POST /api/subscription/upgrade", requireAuth(http.HandlerFunc(h.upgrade)))
	mux.Handle("POST /api/subscription/cancel", requireAuth(http.HandlerFunc(h.cancel)))
	mux.Handle("GET /api/features/{feature}/gate", requireAuth(http.HandlerFunc(h.gate)))
	mux.Handle("POST /api/features/{feature}/consume", requireAuth(http.HandlerFunc(h.consume)))
}

func (h *SubscriptionHandler) getSubscription(w http.ResponseWriter, r *http.Request) {
	const op = "handler.subscription.get"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	sub, err := h.engine.Subscription(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"subscription": sub})
}

type upgradeRequest struct {
	Plan domain.Plan `json:"plan"`
}

func (h *SubscriptionHandler) upgrade(w http.ResponseWriter, r *http.Request) {
	const op = "handler.subscription.upgrade"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var req upgradeRequest
	if err := decodeJSON(r, op, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.engine.UpgradePlan(r.Context(), user.ID, req.Plan); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	h.publisher.Publish(r.Context(), events.TypePlanUpgraded, user.ID, map[string]string{
		"plan": string(req.Plan),
	})

	sub, err := h.engine.Subscription(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"subscription": sub})
}

func (h *SubscriptionHandler) cancel(w http.ResponseWriter, r *http.Request) {
	const op = "handler.subscription.cancel"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.engine.CancelSubscription(r.Context(), user.ID); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	h.publisher.Publish(r.Context(), events.TypeSubscriptionCancelled, user.ID, nil)

	sub, err := h.engine.Subscription(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"subscription": sub})
}

func (h *SubscriptionHandler) gate(w http.ResponseWriter, r *http.Request) {
	const op = "handler.features.gate"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	feature := r.PathValue("feature")
	gate, err := h.engine.Gate(r.Context(), user.ID, feature)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, gate)
}

// consumeResponse reports whether the consumption went through plus the
// gate state afterwards. Denials are not errors; the client reads Allowed
// and renders its upgrade prompt from the gate.
type consumeResponse struct {
	Allowed bool              `json:"allowed"`
	Gate    *entitlement.Gate `json:"gate"`
}

func (h *SubscriptionHandler) consume(w http.ResponseWriter, r *http.Request) {
	const op = "handler.features.consume"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	feature := r.PathValue("feature")
	allowed, err := h.engine.TryConsume(r.Context(), user.ID, feature)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	gate, err := h.engine.Gate(r.Context(), user.ID, feature)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, consumeResponse{Allowed: allowed, Gate: gate})
}
