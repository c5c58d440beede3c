// Package ratelimit provides per-client request limiting with two backends:
// an in-process token-bucket map for single-replica deployments and a
// Redis-backed fixed window for fleets that share a limit.
package ratelimit

import "context"

// Limiter reports whether a request attributed to key may proceed. A false
// return means the client is over its limit. Errors indicate backend
// trouble, not denial; callers decide whether to fail open.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
