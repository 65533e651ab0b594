// Package ratelimit provides a blocking interval limiter.
//
// The Jikan API allows roughly one request per second. The Limiter keeps the
// client honest by sleeping the caller until the minimum interval since the
// previous request has elapsed. The clock is injectable so tests can verify
// the pacing without real sleeps.
package ratelimit
