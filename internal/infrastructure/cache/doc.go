// Package cache holds the Redis-backed and in-process stores: request
// idempotency keys and the optional Redis usage counters.
package cache
