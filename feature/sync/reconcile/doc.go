// Package reconcile writes mapped catalog entities into the store.
//
// The external ID is the sole reconciliation key. A record that does not
// exist yet is inserted whole, with the curated columns seeded from their
// API counterparts. A record that already exists has only its API column
// set refreshed; curated columns are never touched on update, and nothing
// is ever deleted.
//
// Write failures are wrapped in ErrStore so the orchestrator can tell them
// apart from per-record mapping errors and abort the running pass.
package reconcile
