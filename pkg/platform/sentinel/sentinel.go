package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The registry cache and lookup
// layers return these (optionally wrapped) so callers can branch without
// string matching.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entry does not exist in the cache
// - ErrExpired: cached entry exists but its TTL has elapsed
// - ErrUnavailable: the upstream registry is temporarily unreachable
//
// For validation errors (bad input, malformed plates), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
