package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasFeature(t *testing.T) {
	tests := []struct {
		name      string
		plan      Plan
		featureID string
		want      bool
	}{
		{"free plan includes limited ai chat", PlanFree, "ai_chat_limited", true},
		{"free plan lacks pro feature", PlanFree, "career_roadmap", false},
		{"pro plan includes roadmaps", PlanPro, "career_roadmap", true},
		{"max plan includes mentor sessions", PlanMax, "personal_mentor", true},
		{"unknown feature id", PlanPro, "time_travel", false},
		{"unknown plan", Plan("enterprise"), "college_search", false},
		{"empty feature id", PlanFree, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasFeature(tt.plan, tt.featureID))
		})
	}
}

func TestFeatureLimit(t *testing.T) {
	t.Run("numeric cap", func(t *testing.T) {
		l := FeatureLimit(PlanFree, "ai_chat_limited")
		assert.True(t, l.Enforced())
		assert.Equal(t, 5, l.N)
	})

	t.Run("unlimited flag wins", func(t *testing.T) {
		l := FeatureLimit(PlanPro, "ai_chat_unlimited")
		assert.True(t, l.Unlimited)
		assert.False(t, l.Enforced())
	})

	t.Run("included without cap", func(t *testing.T) {
		l := FeatureLimit(PlanFree, "college_search")
		assert.Equal(t, NoLimit, l)
	})

	t.Run("unknown plan and feature return no limit", func(t *testing.T) {
		assert.Equal(t, NoLimit, FeatureLimit(Plan("enterprise"), "college_search"))
		assert.Equal(t, NoLimit, FeatureLimit(PlanFree, "time_travel"))
	})
}

func TestLimitRemaining(t *testing.T) {
	capped := Limit{Capped: true, N: 5}
	assert.Equal(t, 5, capped.Remaining(0))
	assert.Equal(t, 1, capped.Remaining(4))
	assert.Equal(t, 0, capped.Remaining(5))
	assert.Equal(t, 0, capped.Remaining(9))

	assert.Equal(t, -1, Limit{Unlimited: true}.Remaining(100))
	assert.Equal(t, -1, NoLimit.Remaining(100))
}

func TestPlanCatalog(t *testing.T) {
	require.Len(t, Catalog, 3)
	assert.Equal(t, PlanFree, Catalog[0].ID)
	assert.Equal(t, PlanPro, Catalog[1].ID)
	assert.Equal(t, PlanMax, Catalog[2].ID)

	// Feature ids must be unique within each plan.
	for _, p := range Catalog {
		seen := make(map[string]bool)
		for _, f := range p.Features {
			assert.Falsef(t, seen[f.ID], "duplicate feature %s in plan %s", f.ID, p.ID)
			seen[f.ID] = true
		}
	}
}

func TestPlanValid(t *testing.T) {
	assert.True(t, PlanFree.Valid())
	assert.True(t, PlanPro.Valid())
	assert.True(t, PlanMax.Valid())
	assert.False(t, Plan("enterprise").Valid())
	assert.False(t, Plan("").Valid())
}

func TestDefaultSubscription(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	sub := DefaultSubscription(now)

	assert.Equal(t, PlanFree, sub.Plan)
	assert.Equal(t, SubscriptionStatusActive, sub.Status)
	assert.False(t, sub.AutoRenew)
	assert.Nil(t, sub.EndDate)

	free, ok := PlanByID(PlanFree)
	require.True(t, ok)
	assert.Equal(t, free.FeatureIDs(), sub.Features)
}

func TestUsageRecord(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	rec := NewUsageRecord(now)

	assert.Equal(t, 0, rec.Count("ai_chat_limited"))
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), rec.ResetsAt)
	assert.False(t, rec.Stale(now))
	assert.False(t, rec.Stale(rec.ResetsAt.Add(-time.Second)))
	assert.True(t, rec.Stale(rec.ResetsAt))
	assert.True(t, rec.Stale(rec.ResetsAt.Add(24*time.Hour)))
}

func TestDisplayPrice(t *testing.T) {
	pro, ok := PlanByID(PlanPro)
	require.True(t, ok)
	assert.Contains(t, pro.DisplayPrice(), "299")
}
