// Package kv defines a minimal durable key-value store used to persist small
// pieces of client state, such as the rate-limit timestamp, across submission
// attempts and process restarts.
//
// Two backends are provided: Memory, a mutex-guarded map suitable for tests
// and single-process use, and RedisStore, which persists values in Redis so
// the cooldown survives restarts and is shared across instances.
package kv
