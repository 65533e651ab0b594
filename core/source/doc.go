// Package source holds helpers shared by the upstream API clients.
//
// Each concrete client lives in its own subpackage (tmdb, jikan, igdb) with
// its own Config. This package carries the bounded-retry helper they use
// for transient network failures.
package source
