// Package domain contains core business types for the Disha platform.
//
// This file defines the subscription record and usage counters owned by the
// entitlement engine. Both are persisted wholesale through the key-value
// boundary; there are no partial writes.
package domain

import "time"

// SubscriptionStatus represents the possible states of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusInactive  SubscriptionStatus = "inactive"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// SubscriptionPeriod is how long an upgraded plan runs before renewal.
const SubscriptionPeriod = 30 * 24 * time.Hour

// Subscription is the per-user subscription record.
//
// Features holds the feature id snapshot taken from the catalog at
// plan-assignment time. The snapshot may drift from the catalog if the
// catalog changes after assignment; that staleness is accepted, not treated
// as corruption.
type Subscription struct {
	Plan      Plan               `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"start_date"`
	EndDate   *time.Time         `json:"end_date,omitempty"`
	AutoRenew bool               `json:"auto_renew"`
	Features  []string           `json:"features"`
}

// DefaultSubscription synthesizes the record used when nothing is persisted:
// free plan, active, no auto-renew, free feature snapshot. It is not written
// to storage until the first mutation.
func DefaultSubscription(now time.Time) *Subscription {
	var features []string
	if p, ok := PlanByID(PlanFree); ok {
		features = p.FeatureIDs()
	}
	return &Subscription{
		Plan:      PlanFree,
		Status:    SubscriptionStatusActive,
		StartDate: now,
		AutoRenew: false,
		Features:  features,
	}
}

// UsageRecord maps feature ids to consumption counters for one user.
// Counters only ever increment; the whole record rolls to empty when the
// month boundary passes.
type UsageRecord struct {
	Counters map[string]int `json:"counters"`
	ResetsAt time.Time      `json:"resets_at"`
}

// NewUsageRecord returns an empty record whose reset boundary is the start
// of the next UTC calendar month.
func NewUsageRecord(now time.Time) *UsageRecord {
	return &UsageRecord{
		Counters: make(map[string]int),
		ResetsAt: NextMonthStart(now),
	}
}

// Count returns the counter for a feature, defaulting to 0.
func (u *UsageRecord) Count(featureID string) int {
	return u.Counters[featureID]
}

// Stale reports whether the record's month has rolled over.
func (u *UsageRecord) Stale(now time.Time) bool {
	return !u.ResetsAt.IsZero() && !now.Before(u.ResetsAt)
}

// NextMonthStart returns the first instant of the month after now, in UTC.
func NextMonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
