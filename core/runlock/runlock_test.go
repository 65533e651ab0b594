package runlock_test

import (
	"testing"

	"media-orbit/core/runlock"

	"github.com/stretchr/testify/assert"
)

func TestTryLock(t *testing.T) {
	r := runlock.NewRegistry()

	assert.True(t, r.TryLock("movies"))
	assert.False(t, r.TryLock("movies"), "second acquisition must fail while held")
	assert.True(t, r.TryLock("anime"), "other keys are independent")

	r.Unlock("movies")
	assert.True(t, r.TryLock("movies"))
}

func TestUnlockUnheldIsNoop(t *testing.T) {
	r := runlock.NewRegistry()
	r.Unlock("games")
	assert.True(t, r.TryLock("games"))
}
