// Package sync implements the catalog synchronization pipeline.
//
// The Orchestrator runs one pass per content type: it walks the upstream
// listings (TMDB for movies and series, Jikan for anime, IGDB for games),
// maps each record through feature/sync/mapper and writes it through
// feature/sync/reconcile. A pass holds its content type's run lock for its
// whole duration and runs inside a single database transaction.
//
// Failure handling is asymmetric on purpose: a record that cannot be
// fetched or mapped is logged and skipped, while a database write failure
// aborts and rolls back the whole pass. SyncAll isolates the four types
// from each other, so one broken source never starves the rest.
//
// The package also exposes the manual trigger endpoint, protected by a
// shared secret header, which responds 202 and runs the pass in the
// background.
package sync
