package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
)

func newSubscriptionMux(engine *entitlement.Engine) *http.ServeMux {
	mux := http.NewServeMux()
	NewSubscriptionHandler(engine, testPublisher(), testLogger()).RegisterRoutes(mux, passthrough)
	return mux
}

func TestListPlans(t *testing.T) {
	mux := http.NewServeMux()
	NewPlanHandler(testLogger()).RegisterRoutes(mux)

	rec := doRequest(t, mux, httptest.NewRequest("GET", "/api/plans", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Plans []planView `json:"plans"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Plans, 3)
	assert.Equal(t, domain.PlanFree, body.Plans[0].ID)
	assert.Equal(t, domain.PlanPro, body.Plans[1].ID)
	assert.NotEmpty(t, body.Plans[1].DisplayPrice)
}

func TestGetSubscriptionDefaultsToFree(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	rec := doRequest(t, mux, authedRequest("GET", "/api/subscription", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Subscription domain.Subscription `json:"subscription"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, domain.PlanFree, body.Subscription.Plan)
	assert.Equal(t, domain.SubscriptionStatusActive, body.Subscription.Status)
}

func TestGetSubscriptionRequiresAuth(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	rec := doRequest(t, mux, httptest.NewRequest("GET", "/api/subscription", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domain.EUNAUTHORIZED, errorCode(t, rec))
}

func TestUpgradeSubscription(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	rec := doRequest(t, mux, authedRequest("POST", "/api/subscription/upgrade", map[string]string{"plan": "pro"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Subscription domain.Subscription `json:"subscription"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, domain.PlanPro, body.Subscription.Plan)
	assert.True(t, body.Subscription.AutoRenew)
	assert.NotNil(t, body.Subscription.EndDate)
}

func TestUpgradeSubscriptionRejectsUnknownPlan(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	rec := doRequest(t, mux, authedRequest("POST", "/api/subscription/upgrade", map[string]string{"plan": "platinum"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.EINVALID, errorCode(t, rec))
}

func TestCancelSubscription(t *testing.T) {
	engine := testEngine()
	mux := newSubscriptionMux(engine)

	rec := doRequest(t, mux, authedRequest("POST", "/api/subscription/upgrade", map[string]string{"plan": "max"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, mux, authedRequest("POST", "/api/subscription/cancel", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Subscription domain.Subscription `json:"subscription"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, domain.SubscriptionStatusCancelled, body.Subscription.Status)
	assert.Equal(t, domain.PlanMax, body.Subscription.Plan)
	assert.False(t, body.Subscription.AutoRenew)
}

func TestFeatureGate(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	rec := doRequest(t, mux, authedRequest("GET", "/api/features/ai_chat_limited/gate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var gate entitlement.Gate
	decodeBody(t, rec, &gate)
	assert.Equal(t, "ai_chat_limited", gate.Feature)
	assert.True(t, gate.CanUse)
	assert.True(t, gate.HasAccess)
	require.NotNil(t, gate.Remaining)
	assert.Equal(t, 5, *gate.Remaining)
}

func TestConsumeFeature(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	// Free plan allows 5 limited chats per month.
	var body consumeResponse
	for i := 0; i < 5; i++ {
		rec := doRequest(t, mux, authedRequest("POST", "/api/features/ai_chat_limited/consume", nil))
		require.Equal(t, http.StatusOK, rec.Code, "consume %d", i+1)
		decodeBody(t, rec, &body)
		assert.True(t, body.Allowed, "consume %d", i+1)
	}

	// The sixth is denied, reported through the payload rather than an
	// error status.
	rec := doRequest(t, mux, authedRequest("POST", "/api/features/ai_chat_limited/consume", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.False(t, body.Allowed)
	assert.True(t, body.Gate.HasAccess)
	assert.Equal(t, 5, body.Gate.Usage)
}

func TestConsumeFeatureWithoutAccess(t *testing.T) {
	mux := newSubscriptionMux(testEngine())

	rec := doRequest(t, mux, authedRequest("POST", "/api/features/personal_mentor/consume", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body consumeResponse
	decodeBody(t, rec, &body)
	assert.False(t, body.Allowed)
	assert.False(t, body.Gate.HasAccess)
}
