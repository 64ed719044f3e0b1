package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"github.com/ankitpatil/disha/internal/billing"
	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/kv"
)

func newBillingMux(engine *entitlement.Engine, store kv.Store, enabled bool) *http.ServeMux {
	svc := billing.NewStripeService("", "", billing.PriceConfig{})
	mux := http.NewServeMux()
	h := NewBillingHandler(svc, engine, store, testPublisher(), "http://localhost:8080", enabled, testLogger())
	h.RegisterRoutes(mux, passthrough)
	h.RegisterWebhook(mux)
	return mux
}

func TestCheckoutWithoutStripeUpgradesDirectly(t *testing.T) {
	engine := testEngine()
	mux := newBillingMux(engine, kv.NewMemoryStore(), false)

	rec := doRequest(t, mux, authedRequest("POST", "/api/billing/checkout", map[string]string{"plan": "pro"}))
	require.Equal(t, http.StatusOK, rec.Code)

	sub, err := engine.Subscription(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPro, sub.Plan)
}

func TestCheckoutRejectsFreePlan(t *testing.T) {
	mux := newBillingMux(testEngine(), kv.NewMemoryStore(), false)

	rec := doRequest(t, mux, authedRequest("POST", "/api/billing/checkout", map[string]string{"plan": "free"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, mux, authedRequest("POST", "/api/billing/checkout", map[string]string{"plan": "gold"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortalWithoutStripe(t *testing.T) {
	mux := newBillingMux(testEngine(), kv.NewMemoryStore(), false)

	rec := doRequest(t, mux, authedRequest("POST", "/api/billing/portal", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortalWithoutCustomer(t *testing.T) {
	mux := newBillingMux(testEngine(), kv.NewMemoryStore(), true)

	rec := doRequest(t, mux, authedRequest("POST", "/api/billing/portal", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookDisabled(t *testing.T) {
	mux := newBillingMux(testEngine(), kv.NewMemoryStore(), false)

	rec := doRequest(t, mux, httptest.NewRequest("POST", "/api/billing/webhook", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func newWebhookHandler(engine *entitlement.Engine, store kv.Store) *BillingHandler {
	svc := billing.NewStripeService("sk_test_dummy", "whsec_dummy", billing.PriceConfig{
		ProMonthlyPriceID: "price_pro",
		MaxMonthlyPriceID: "price_max",
	})
	return NewBillingHandler(svc, engine, store, testPublisher(), "http://localhost:8080", true, testLogger())
}

func subscriptionEvent(raw string) stripe.Event {
	return stripe.Event{
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: json.RawMessage(raw)},
	}
}

func TestSubscriptionDeletedCancelsViaMetadata(t *testing.T) {
	engine := testEngine()
	h := newWebhookHandler(engine, kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, engine.UpgradePlan(ctx, "user-1", domain.PlanPro))

	// Checkout stamps the user onto the subscription's metadata.
	event := subscriptionEvent(`{"id":"sub_1","metadata":{"user_id":"user-1"}}`)
	req := httptest.NewRequest("POST", "/api/billing/webhook", nil)
	require.NoError(t, h.handleSubscriptionDeleted(req, event))

	sub, err := engine.Subscription(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusCancelled, sub.Status)
	assert.False(t, sub.AutoRenew)
}

func TestSubscriptionDeletedCancelsViaCustomerMapping(t *testing.T) {
	engine := testEngine()
	store := kv.NewMemoryStore()
	h := newWebhookHandler(engine, store)
	ctx := context.Background()

	require.NoError(t, engine.UpgradePlan(ctx, "user-1", domain.PlanMax))
	require.NoError(t, store.Set(ctx, kv.CustomerUserKey("cus_123"), []byte("user-1")))

	// Events created outside checkout carry only the customer id.
	event := subscriptionEvent(`{"id":"sub_2","customer":{"id":"cus_123"}}`)
	req := httptest.NewRequest("POST", "/api/billing/webhook", nil)
	require.NoError(t, h.handleSubscriptionDeleted(req, event))

	sub, err := engine.Subscription(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusCancelled, sub.Status)
	assert.Equal(t, domain.PlanMax, sub.Plan)
}

func TestSubscriptionDeletedUnresolvableIsIgnored(t *testing.T) {
	engine := testEngine()
	h := newWebhookHandler(engine, kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, engine.UpgradePlan(ctx, "user-1", domain.PlanPro))

	event := subscriptionEvent(`{"id":"sub_3","customer":{"id":"cus_unknown"}}`)
	req := httptest.NewRequest("POST", "/api/billing/webhook", nil)
	require.NoError(t, h.handleSubscriptionDeleted(req, event))

	sub, err := engine.Subscription(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusActive, sub.Status)
}

func TestCheckoutCompletedAppliesPlanAndMapping(t *testing.T) {
	engine := testEngine()
	store := kv.NewMemoryStore()
	h := newWebhookHandler(engine, store)
	ctx := context.Background()

	event := stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(
			`{"id":"cs_1","client_reference_id":"user-1","customer":{"id":"cus_9"},"metadata":{"plan":"pro"}}`,
		)},
	}
	req := httptest.NewRequest("POST", "/api/billing/webhook", nil)
	require.NoError(t, h.handleCheckoutCompleted(req, event))

	sub, err := engine.Subscription(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanPro, sub.Plan)

	// Both directions of the customer mapping are stored.
	raw, err := store.Get(ctx, kv.CustomerKey("user-1"))
	require.NoError(t, err)
	assert.Equal(t, "cus_9", string(raw))

	raw, err = store.Get(ctx, kv.CustomerUserKey("cus_9"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", string(raw))
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	mux := newBillingMux(testEngine(), kv.NewMemoryStore(), true)

	req := httptest.NewRequest("POST", "/api/billing/webhook", nil)
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	rec := doRequest(t, mux, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
