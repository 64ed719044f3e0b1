// Package kv provides the key-value persistence boundary for per-user
// records such as subscriptions and usage counters.
//
// This package defines a Store interface with implementations for:
// - MemoryStore: In-process map for tests and local development
// - PostgresStore: kv_store table backed by pgx
// - RedisStore: Redis strings for deployments that already run Redis
//
// Records are read and written wholesale as JSON blobs; absence of a key is
// reported via ErrNotFound and treated by callers as "use defaults", not as
// a failure.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is the persistence contract used by the entitlement engine.
type Store interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Provider constants selected by configuration.
const (
	ProviderMemory   = "memory"
	ProviderPostgres = "postgres"
	ProviderRedis    = "redis"
)

// SubscriptionKey returns the storage key for a user's subscription record.
func SubscriptionKey(userID string) string {
	return fmt.Sprintf("user_subscription:%s", userID)
}

// UsageKey returns the storage key for a user's feature usage counters.
func UsageKey(userID string) string {
	return fmt.Sprintf("feature_usage:%s", userID)
}

// CustomerKey returns the storage key for a user's billing customer id.
func CustomerKey(userID string) string {
	return fmt.Sprintf("stripe_customer:%s", userID)
}

// CustomerUserKey returns the storage key for the reverse mapping from a
// billing customer id to the user, used to attribute webhook events.
func CustomerUserKey(customerID string) string {
	return fmt.Sprintf("stripe_customer_user:%s", customerID)
}
