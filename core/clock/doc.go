// Package clock provides an injectable clock abstraction.
//
// The rate limiter, the job scheduler and the IGDB token cache all depend on
// wall-clock time. Injecting a Clock lets their tests advance time manually
// instead of sleeping.
package clock
