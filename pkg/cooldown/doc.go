// Package cooldown implements a single-attempt fixed-window rate limiter for
// form submissions: one attempt is allowed per window, tracked by a timestamp
// persisted in a kv.Store.
//
// The timestamp is recorded as soon as an attempt is allowed, before the
// outcome of the submission is known. A failed network call therefore still
// consumes the window. This is the intended anti-abuse behaviour, not a
// delivery-aware limiter.
package cooldown
