package catalog_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"media-orbit/core/database"
	"media-orbit/feature/catalog"
	"media-orbit/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	app := fiber.New()
	require.NoError(t, catalog.NewFeature(db, zap.NewNop()).Load(app))
	return app, db
}

func seedMovies(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&models.Movie{
			ExternalID:   int64(i),
			CuratedTitle: fmt.Sprintf("Movie %d", i),
			APITitle:     fmt.Sprintf("Movie %d", i),
			Rating:       float64(i % 10),
		}).Error)
	}
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	if out != nil && res.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

func TestListMoviesPagination(t *testing.T) {
	app, db := setupApp(t)
	seedMovies(t, db, 25)

	var page catalog.Page[models.Movie]
	status := getJSON(t, app, "/api/movies?page=1&per_page=10", &page)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, page.Results, 10)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(25), page.TotalResults)

	status = getJSON(t, app, "/api/movies?page=3&per_page=10", &page)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, page.Results, 5)

	// Ordered by rating, best first.
	status = getJSON(t, app, "/api/movies?per_page=5", &page)
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, page.Results)
	assert.Equal(t, 9.0, page.Results[0].Rating)
}

func TestGetMovieNotFound(t *testing.T) {
	app, db := setupApp(t)
	seedMovies(t, db, 1)

	var movie models.Movie
	status := getJSON(t, app, "/api/movies/1", &movie)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Movie 1", movie.CuratedTitle)

	status = getJSON(t, app, "/api/movies/999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status = getJSON(t, app, "/api/movies/abc", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSearchAcrossTypes(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.Movie{ExternalID: 1, CuratedTitle: "Star Wars", APITitle: "Star Wars"}).Error)
	require.NoError(t, db.Create(&models.Series{ExternalID: 2, CuratedTitle: "Star Trek", APITitle: "Star Trek"}).Error)
	require.NoError(t, db.Create(&models.Anime{ExternalID: 3, CuratedTitle: "Lucky Star", APITitle: "Lucky Star"}).Error)
	require.NoError(t, db.Create(&models.Game{ExternalID: 4, CuratedTitle: "Starfield", APITitle: "Starfield"}).Error)
	require.NoError(t, db.Create(&models.Game{ExternalID: 5, CuratedTitle: "Doom", APITitle: "Doom"}).Error)

	var out struct {
		Results []catalog.SearchItem `json:"results"`
	}
	status := getJSON(t, app, "/api/search?q=Star", &out)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, out.Results, 4)

	types := make(map[string]int)
	for _, item := range out.Results {
		types[item.Type]++
	}
	assert.Equal(t, map[string]int{"movie": 1, "series": 1, "anime": 1, "game": 1}, types)

	status = getJSON(t, app, "/api/search", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSearchMatchesAPITitle(t *testing.T) {
	app, db := setupApp(t)

	// Curated title was renamed by an editor; the API title still matches.
	require.NoError(t, db.Create(&models.Movie{ExternalID: 1, CuratedTitle: "Renomeado", APITitle: "Blade Runner"}).Error)

	var out struct {
		Results []catalog.SearchItem `json:"results"`
	}
	status := getJSON(t, app, "/api/search?q=Blade", &out)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, out.Results, 1)
	// The curated title is what gets displayed.
	assert.Equal(t, "Renomeado", out.Results[0].Title)
}

func TestTrendingOrdersByRating(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.Movie{ExternalID: 1, CuratedTitle: "Mid Movie", Rating: 5}).Error)
	require.NoError(t, db.Create(&models.Anime{ExternalID: 2, CuratedTitle: "Top Anime", Rating: 9.4}).Error)
	require.NoError(t, db.Create(&models.Game{ExternalID: 3, CuratedTitle: "Good Game", Rating: 8.1}).Error)

	var out struct {
		Results []catalog.SearchItem `json:"results"`
	}
	status := getJSON(t, app, "/api/trending", &out)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, out.Results, 3)
	assert.Equal(t, "Top Anime", out.Results[0].Title)
	assert.Equal(t, "Good Game", out.Results[1].Title)
	assert.Equal(t, "Mid Movie", out.Results[2].Title)
}
