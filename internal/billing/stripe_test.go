package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ankitpatil/disha/internal/domain"
)

func TestPlanPriceMapping(t *testing.T) {
	svc := NewStripeService("sk_test_dummy", "whsec_dummy", PriceConfig{
		ProMonthlyPriceID: "price_pro",
		MaxMonthlyPriceID: "price_max",
	})

	plan, ok := svc.PlanForPriceID("price_pro")
	assert.True(t, ok)
	assert.Equal(t, domain.PlanPro, plan)

	plan, ok = svc.PlanForPriceID("price_max")
	assert.True(t, ok)
	assert.Equal(t, domain.PlanMax, plan)

	_, ok = svc.PlanForPriceID("price_unknown")
	assert.False(t, ok)

	priceID, ok := svc.PriceIDForPlan(domain.PlanMax)
	assert.True(t, ok)
	assert.Equal(t, "price_max", priceID)

	// The free plan has no Stripe price.
	_, ok = svc.PriceIDForPlan(domain.PlanFree)
	assert.False(t, ok)
}

func TestPlanPriceMappingUnconfigured(t *testing.T) {
	svc := NewStripeService("", "", PriceConfig{})

	_, ok := svc.PriceIDForPlan(domain.PlanPro)
	assert.False(t, ok)
}
