// Package schedule provides the polling job scheduler for the sync pipeline.
//
// The scheduler holds an explicit table of (name, HH:MM trigger, func)
// pairs and polls it at a short fixed interval. A job fires when its daily
// trigger time has passed and it has not yet run that day. Errors and
// panics from jobs are logged and never kill the loop; cancelling the
// context is the only clean shutdown path.
//
// Time is read through an injectable clock so tests can assert "job X fired
// at time Y" deterministically.
package schedule
