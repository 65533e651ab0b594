// Package notify delivers release reminders to users.
//
// The Checker runs daily from the scheduler: it looks for catalog entries
// releasing in 7 days and in 1 day, matches them against each user's
// favorite lists (upstream external IDs, one list per content type) and
// writes one notification per user and release. The
// pass is idempotent, so a rerun on the same day creates nothing new.
//
// Users read their notifications through GET /api/notifications, protected
// by the bearer-token middleware.
package notify
