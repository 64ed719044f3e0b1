// Package entitlement implements the feature-gating engine.
//
// The engine owns the per-user subscription record and feature usage
// counters, answers "can this feature be used now", and records
// consumption. It is the only writer of those records: they are cached in
// memory, loaded wholesale from the key-value store, and written wholesale
// on every mutation. There is no cross-process coordination; a single
// engine instance is constructed at startup and handed to whatever needs
// gating decisions.
package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/kv"
	"github.com/ankitpatil/disha/internal/metrics"
)

// Gate is the display-layer view of one gating decision.
// Remaining is nil unless the limit is numeric.
type Gate struct {
	Feature   string       `json:"feature"`
	CanUse    bool         `json:"can_use"`
	HasAccess bool         `json:"has_access"`
	Usage     int          `json:"usage"`
	Limit     domain.Limit `json:"limit"`
	Remaining *int         `json:"remaining"`
}

// Engine makes gating decisions and mutates subscription and usage state.
type Engine struct {
	store  kv.Store
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	subs  map[string]*domain.Subscription
	usage map[string]*domain.UsageRecord
}

// New creates an Engine backed by the given store.
func New(store kv.Store, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
		now:    time.Now,
		subs:   make(map[string]*domain.Subscription),
		usage:  make(map[string]*domain.UsageRecord),
	}
}

// Subscription returns the user's current subscription, synthesizing the
// free-plan default when nothing is persisted. The default is not written
// to storage until the first mutation.
func (e *Engine) Subscription(ctx context.Context, userID string) (*domain.Subscription, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub, err := e.subscriptionLocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := *sub
	return &out, nil
}

// Refresh drops the cached records for a user and reloads them from storage.
func (e *Engine) Refresh(ctx context.Context, userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.subs, userID)
	delete(e.usage, userID)

	if _, err := e.subscriptionLocked(ctx, userID); err != nil {
		return err
	}
	_, err := e.usageLocked(ctx, userID)
	return err
}

// Usage returns the current counter for a feature, defaulting to 0.
func (e *Engine) Usage(ctx context.Context, userID, featureID string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, err := e.usageLocked(ctx, userID)
	if err != nil {
		return 0, err
	}
	return rec.Count(featureID), nil
}

// CanUseFeature is the composite gating decision: the feature must be
// included in the user's plan, and if it carries a numeric cap, usage must
// be below it. Unlimited and capless features are always usable once
// included.
func (e *Engine) CanUseFeature(ctx context.Context, userID, featureID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canUseLocked(ctx, userID, featureID)
}

// IncrementUsage unconditionally increments a feature counter by one and
// persists the counters. It does not check CanUseFeature: callers consuming
// a gated feature are expected to check first, or to use TryConsume, which
// does both atomically.
func (e *Engine) IncrementUsage(ctx context.Context, userID, featureID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.incrementLocked(ctx, userID, featureID)
}

// TryConsume checks the gate and increments the counter in one critical
// section. It reports whether consumption was allowed; a denied attempt
// leaves the counter untouched.
func (e *Engine) TryConsume(ctx context.Context, userID, featureID string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	allowed, err := e.canUseLocked(ctx, userID, featureID)
	if err != nil {
		return false, err
	}
	if !allowed {
		return false, nil
	}
	if err := e.incrementLocked(ctx, userID, featureID); err != nil {
		return false, err
	}
	return true, nil
}

// Gate returns the full gating payload consumed by display surfaces.
func (e *Engine) Gate(ctx context.Context, userID, featureID string) (*Gate, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub, err := e.subscriptionLocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec, err := e.usageLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit := domain.FeatureLimit(sub.Plan, featureID)
	used := rec.Count(featureID)

	g := &Gate{
		Feature:   featureID,
		HasAccess: domain.HasFeature(sub.Plan, featureID),
		Usage:     used,
		Limit:     limit,
	}
	g.CanUse = g.HasAccess && (!limit.Enforced() || used < limit.N)
	if limit.Enforced() {
		remaining := limit.Remaining(used)
		g.Remaining = &remaining
	}
	return g, nil
}

// UpgradePlan validates the plan id against the catalog and replaces the
// subscription wholesale: active, starting now, ending in 30 days, with
// auto-renew and a fresh feature snapshot.
func (e *Engine) UpgradePlan(ctx context.Context, userID string, plan domain.Plan) error {
	const op = "entitlement.upgrade"

	details, ok := domain.PlanByID(plan)
	if !ok {
		return domain.InvalidPlan(op, plan)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now().UTC()
	end := now.Add(domain.SubscriptionPeriod)
	sub := &domain.Subscription{
		Plan:      plan,
		Status:    domain.SubscriptionStatusActive,
		StartDate: now,
		EndDate:   &end,
		AutoRenew: true,
		Features:  details.FeatureIDs(),
	}

	if err := e.persistSubscriptionLocked(ctx, userID, sub); err != nil {
		return domain.Internal(err, op, "failed to persist subscription")
	}

	metrics.PlanUpgradesTotal.WithLabelValues(string(plan)).Inc()
	e.logger.Info("plan upgraded", "user_id", userID, "plan", plan)
	return nil
}

// CancelSubscription marks the persisted subscription cancelled and turns
// off auto-renew, preserving the plan and feature snapshot. When no
// subscription has ever been persisted this is a no-op.
func (e *Engine) CancelSubscription(ctx context.Context, userID string) error {
	const op = "entitlement.cancel"

	e.mu.Lock()
	defer e.mu.Unlock()

	sub, persisted, err := e.loadSubscriptionLocked(ctx, userID)
	if err != nil {
		return domain.Internal(err, op, "failed to load subscription")
	}
	if !persisted {
		return nil
	}

	sub.Status = domain.SubscriptionStatusCancelled
	sub.AutoRenew = false

	if err := e.persistSubscriptionLocked(ctx, userID, sub); err != nil {
		return domain.Internal(err, op, "failed to persist subscription")
	}

	metrics.SubscriptionCancellations.Inc()
	e.logger.Info("subscription cancelled", "user_id", userID, "plan", sub.Plan)
	return nil
}

// =============================================================================
// Internal state management (all require e.mu held)
// =============================================================================

func (e *Engine) canUseLocked(ctx context.Context, userID, featureID string) (bool, error) {
	sub, err := e.subscriptionLocked(ctx, userID)
	if err != nil {
		return false, err
	}

	if !domain.HasFeature(sub.Plan, featureID) {
		metrics.FeatureChecksTotal.WithLabelValues(featureID, "false").Inc()
		metrics.GateDenialsTotal.WithLabelValues(featureID, "no_access").Inc()
		return false, nil
	}

	limit := domain.FeatureLimit(sub.Plan, featureID)
	if !limit.Enforced() {
		metrics.FeatureChecksTotal.WithLabelValues(featureID, "true").Inc()
		return true, nil
	}

	rec, err := e.usageLocked(ctx, userID)
	if err != nil {
		return false, err
	}
	if rec.Count(featureID) >= limit.N {
		metrics.FeatureChecksTotal.WithLabelValues(featureID, "false").Inc()
		metrics.GateDenialsTotal.WithLabelValues(featureID, "limit").Inc()
		e.logger.Info("feature limit reached",
			"user_id", userID,
			"feature", featureID,
			"used", rec.Count(featureID),
			"limit", limit.N,
		)
		return false, nil
	}

	metrics.FeatureChecksTotal.WithLabelValues(featureID, "true").Inc()
	return true, nil
}

func (e *Engine) incrementLocked(ctx context.Context, userID, featureID string) error {
	const op = "entitlement.increment"

	rec, err := e.usageLocked(ctx, userID)
	if err != nil {
		return err
	}
	rec.Counters[featureID]++

	if err := e.persistUsageLocked(ctx, userID, rec); err != nil {
		return domain.Internal(err, op, "failed to persist usage")
	}
	metrics.FeatureUsageTotal.WithLabelValues(featureID).Inc()
	return nil
}

// subscriptionLocked returns the cached subscription, loading or
// synthesizing it as needed.
func (e *Engine) subscriptionLocked(ctx context.Context, userID string) (*domain.Subscription, error) {
	if sub, ok := e.subs[userID]; ok {
		return sub, nil
	}
	sub, _, err := e.loadSubscriptionLocked(ctx, userID)
	if err != nil {
		return nil, domain.Internal(err, "entitlement.load", "failed to load subscription")
	}
	e.subs[userID] = sub
	return sub, nil
}

// loadSubscriptionLocked reads the persisted record, reporting whether one
// existed; absence yields the unpersisted free-plan default.
func (e *Engine) loadSubscriptionLocked(ctx context.Context, userID string) (*domain.Subscription, bool, error) {
	raw, err := e.store.Get(ctx, kv.SubscriptionKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return domain.DefaultSubscription(e.now().UTC()), false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sub domain.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, false, err
	}
	return &sub, true, nil
}

// usageLocked returns the cached usage record, loading it as needed and
// rolling the counters forward when the month boundary has passed.
func (e *Engine) usageLocked(ctx context.Context, userID string) (*domain.UsageRecord, error) {
	rec, ok := e.usage[userID]
	if !ok {
		loaded, err := e.loadUsageLocked(ctx, userID)
		if err != nil {
			return nil, domain.Internal(err, "entitlement.load", "failed to load usage")
		}
		rec = loaded
		e.usage[userID] = rec
	}

	now := e.now().UTC()
	if rec.Stale(now) {
		rec.Counters = make(map[string]int)
		rec.ResetsAt = domain.NextMonthStart(now)
		metrics.UsageResetsTotal.Inc()
		e.logger.Info("usage counters reset", "user_id", userID, "resets_at", rec.ResetsAt)
	}
	return rec, nil
}

func (e *Engine) loadUsageLocked(ctx context.Context, userID string) (*domain.UsageRecord, error) {
	raw, err := e.store.Get(ctx, kv.UsageKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return domain.NewUsageRecord(e.now().UTC()), nil
	}
	if err != nil {
		return nil, err
	}

	var rec domain.UsageRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec.Counters == nil {
		rec.Counters = make(map[string]int)
	}
	return &rec, nil
}

func (e *Engine) persistSubscriptionLocked(ctx context.Context, userID string, sub *domain.Subscription) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	if err := e.store.Set(ctx, kv.SubscriptionKey(userID), raw); err != nil {
		return err
	}
	e.subs[userID] = sub
	return nil
}

func (e *Engine) persistUsageLocked(ctx context.Context, userID string, rec *domain.UsageRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := e.store.Set(ctx, kv.UsageKey(userID), raw); err != nil {
		return err
	}
	e.usage[userID] = rec
	return nil
}
