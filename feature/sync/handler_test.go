package sync_test

import (
	"net/http/httptest"
	"testing"

	"media-orbit/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupSyncApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	db := testDB(t)
	feat := sync.NewFeature(db, zap.NewNop(), testConfig(), secret,
		&fakeTMDB{}, &fakeTMDB{}, &fakeJikan{}, &fakeIGDB{})

	app := fiber.New()
	require.NoError(t, feat.Load(app))
	return app
}

func TestRunRequiresSecret(t *testing.T) {
	app := setupSyncApp(t, "topsecret")

	req := httptest.NewRequest("POST", "/api/sync/run", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	req = httptest.NewRequest("POST", "/api/sync/run", nil)
	req.Header.Set(sync.HeaderSyncSecret, "wrong")
	res, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRunRejectsWhenSecretUnset(t *testing.T) {
	app := setupSyncApp(t, "")

	req := httptest.NewRequest("POST", "/api/sync/run", nil)
	req.Header.Set(sync.HeaderSyncSecret, "")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRunAcceptsValidTrigger(t *testing.T) {
	app := setupSyncApp(t, "topsecret")

	req := httptest.NewRequest("POST", "/api/sync/run?type=movies", nil)
	req.Header.Set(sync.HeaderSyncSecret, "topsecret")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, res.StatusCode)
}

func TestRunRejectsUnknownType(t *testing.T) {
	app := setupSyncApp(t, "topsecret")

	req := httptest.NewRequest("POST", "/api/sync/run?type=books", nil)
	req.Header.Set(sync.HeaderSyncSecret, "topsecret")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
