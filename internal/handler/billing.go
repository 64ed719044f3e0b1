package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/stripe/stripe-go/v79"

	"github.com/ankitpatil/disha/internal/billing"
	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/events"
	"github.com/ankitpatil/disha/internal/kv"
)

// webhookBodyLimit caps the webhook payload size per Stripe's guidance.
const webhookBodyLimit = 64 * 1024

// BillingHandler drives Stripe checkout, the customer portal, and the
// webhook that applies paid plan changes.
//
// When Stripe is not configured, checkout degrades to a direct plan upgrade
// so local development works without billing credentials.
type BillingHandler struct {
	billing   billing.Service
	engine    *entitlement.Engine
	store     kv.Store
	publisher *events.Publisher
	baseURL   string
	enabled   bool
	logger    *slog.Logger
}

// NewBillingHandler creates a billing handler. Set enabled to false when
// Stripe credentials are absent.
func NewBillingHandler(
	svc billing.Service,
	engine *entitlement.Engine,
	store kv.Store,
	publisher *events.Publisher,
	baseURL string,
	enabled bool,
	logger *slog.Logger,
) *BillingHandler {
	return &BillingHandler{
		billing:   svc,
		engine:    engine,
		store:     store,
		publisher: publisher,
		baseURL:   baseURL,
		enabled:   enabled,
		logger:    logger,
	}
}

// RegisterRoutes registers the authenticated billing routes on the mux.
// The webhook route is registered separately because Stripe authenticates
// by signature, not bearer token.
func (h *BillingHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /api/billing/checkout", requireAuth(http.HandlerFunc(h.checkout)))
	mux.Handle("POST /api/billing/portal", requireAuth(http.HandlerFunc(h.portal)))
}

// RegisterWebhook registers the Stripe webhook route on the mux.
func (h *BillingHandler) RegisterWebhook(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/billing/webhook", h.webhook)
}

type checkoutRequest struct {
	Plan domain.Plan `json:"plan"`
}

func (h *BillingHandler) checkout(w http.ResponseWriter, r *http.Request) {
	const op = "handler.billing.checkout"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	var req checkoutRequest
	if err := decodeJSON(r, op, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if !req.Plan.Valid() || req.Plan == domain.PlanFree {
		ErrorResponse(w, r, h.logger, domain.InvalidPlan(op, req.Plan))
		return
	}

	if !h.enabled {
		// No Stripe credentials: apply the upgrade directly.
		if err := h.engine.UpgradePlan(r.Context(), user.ID, req.Plan); err != nil {
			ErrorResponse(w, r, h.logger, err)
			return
		}
		h.publisher.Publish(r.Context(), events.TypePlanUpgraded, user.ID, map[string]string{
			"plan":   string(req.Plan),
			"source": "direct",
		})
		respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"upgraded": true})
		return
	}

	priceID, ok := h.billing.PriceIDForPlan(req.Plan)
	if !ok {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "plan has no configured price"))
		return
	}

	customerID, err := h.customerID(r, user)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	url, err := h.billing.CreateCheckoutSession(
		customerID,
		priceID,
		user.ID,
		h.baseURL+"/subscription?checkout=success",
		h.baseURL+"/subscription?checkout=cancelled",
	)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Internal(err, op, "failed to create checkout session"))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"url": url})
}

func (h *BillingHandler) portal(w http.ResponseWriter, r *http.Request) {
	const op = "handler.billing.portal"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if !h.enabled {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "billing is not configured"))
		return
	}

	raw, err := h.store.Get(r.Context(), kv.CustomerKey(user.ID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			ErrorResponse(w, r, h.logger, domain.NotFound(op, "billing customer", user.ID))
			return
		}
		ErrorResponse(w, r, h.logger, domain.Internal(err, op, "failed to load billing customer"))
		return
	}

	url, err := h.billing.CreatePortalSession(string(raw), h.baseURL+"/subscription")
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Internal(err, op, "failed to create portal session"))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"url": url})
}

// customerID returns the user's Stripe customer id, creating and persisting
// one on first use.
func (h *BillingHandler) customerID(r *http.Request, user *domain.User) (string, error) {
	const op = "handler.billing.customer"
	ctx := r.Context()

	raw, err := h.store.Get(ctx, kv.CustomerKey(user.ID))
	if err == nil {
		return string(raw), nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return "", domain.Internal(err, op, "failed to load billing customer")
	}

	customerID, err := h.billing.CreateCustomer(user.Email, user.Name)
	if err != nil {
		return "", domain.Internal(err, op, "failed to create billing customer")
	}
	if err := h.rememberCustomer(ctx, user.ID, customerID); err != nil {
		return "", domain.Internal(err, op, "failed to persist billing customer")
	}
	return customerID, nil
}

// rememberCustomer persists the user/customer mapping in both directions;
// the reverse entry attributes webhook events that only carry a customer id.
func (h *BillingHandler) rememberCustomer(ctx context.Context, userID, customerID string) error {
	if err := h.store.Set(ctx, kv.CustomerKey(userID), []byte(customerID)); err != nil {
		return err
	}
	return h.store.Set(ctx, kv.CustomerUserKey(customerID), []byte(userID))
}

func (h *BillingHandler) webhook(w http.ResponseWriter, r *http.Request) {
	const op = "handler.billing.webhook"

	if !h.enabled {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "route", r.URL.Path))
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "failed to read webhook payload"))
		return
	}

	event, err := h.billing.VerifyWebhookSignature(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Unauthorized(op, "invalid webhook signature"))
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		err = h.handleCheckoutCompleted(r, event)
	case "customer.subscription.deleted":
		err = h.handleSubscriptionDeleted(r, event)
	default:
		h.logger.Debug("ignoring webhook event", "type", event.Type)
	}
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"received": true})
}

func (h *BillingHandler) handleCheckoutCompleted(r *http.Request, event stripe.Event) error {
	const op = "handler.billing.webhook"

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return domain.Invalid(op, "malformed checkout session payload")
	}

	userID := sess.ClientReferenceID
	if userID == "" {
		h.logger.Warn("checkout session missing client reference", "session", sess.ID)
		return nil
	}

	plan, ok := h.planForSession(&sess)
	if !ok {
		h.logger.Warn("checkout session has no recognizable price", "session", sess.ID)
		return nil
	}

	if err := h.engine.UpgradePlan(r.Context(), userID, plan); err != nil {
		return err
	}
	if sess.Customer != nil {
		if err := h.rememberCustomer(r.Context(), userID, sess.Customer.ID); err != nil {
			h.logger.Error("failed to persist billing customer", "user_id", userID, "error", err)
		}
	}
	h.publisher.Publish(r.Context(), events.TypePlanUpgraded, userID, map[string]string{
		"plan":   string(plan),
		"source": "stripe",
	})
	h.logger.Info("applied checkout upgrade", "user_id", userID, "plan", plan)
	return nil
}

func (h *BillingHandler) handleSubscriptionDeleted(r *http.Request, event stripe.Event) error {
	const op = "handler.billing.webhook"

	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return domain.Invalid(op, "malformed subscription payload")
	}

	userID, err := h.userForSubscription(r.Context(), &sub)
	if err != nil {
		return err
	}
	if userID == "" {
		h.logger.Warn("subscription event has no resolvable user", "subscription", sub.ID)
		return nil
	}

	if err := h.engine.CancelSubscription(r.Context(), userID); err != nil {
		return err
	}
	h.publisher.Publish(r.Context(), events.TypeSubscriptionCancelled, userID, map[string]string{
		"source": "stripe",
	})
	h.logger.Info("applied subscription cancellation", "user_id", userID)
	return nil
}

// userForSubscription attributes a subscription event: the metadata stamped
// at checkout first, then the stored customer mapping.
func (h *BillingHandler) userForSubscription(ctx context.Context, sub *stripe.Subscription) (string, error) {
	const op = "handler.billing.webhook"

	if userID := sub.Metadata["user_id"]; userID != "" {
		return userID, nil
	}
	if sub.Customer == nil {
		return "", nil
	}

	raw, err := h.store.Get(ctx, kv.CustomerUserKey(sub.Customer.ID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", nil
		}
		return "", domain.Internal(err, op, "failed to resolve billing customer")
	}
	return string(raw), nil
}

// planForSession resolves the purchased plan from the session's line item
// price, falling back to the plan recorded in session metadata.
func (h *BillingHandler) planForSession(sess *stripe.CheckoutSession) (domain.Plan, bool) {
	if sess.LineItems != nil {
		for _, item := range sess.LineItems.Data {
			if item.Price == nil {
				continue
			}
			if plan, ok := h.billing.PlanForPriceID(item.Price.ID); ok {
				return plan, true
			}
		}
	}
	if raw, ok := sess.Metadata["plan"]; ok {
		plan := domain.Plan(raw)
		if plan.Valid() {
			return plan, true
		}
	}
	return "", false
}
