// Package runlock provides per-key mutual exclusion for sync passes.
//
// Only one pass per content type may run at a time. The registry is
// in-memory because the pipeline is single-process; a pass that fails to
// acquire its lock is skipped, not queued.
package runlock
