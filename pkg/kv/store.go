package kv

import "context"

// Store is a minimal durable key-value interface. Get reports absence via
// the boolean rather than a sentinel error so that callers can treat a
// missing key as a normal, expected state.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
