package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"media-orbit/core/source/tmdb"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *tmdb.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return tmdb.NewClient(tmdb.Config{
		APIKey:        "test-key",
		BaseURL:       srv.URL,
		Language:      "pt-BR",
		RetryAttempts: 1,
	}, nil)
}

func TestPopularMovies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 3,
			"results": [
				{"id": 550, "title": "Clube da Luta", "overview": "...", "poster_path": "/x.jpg", "release_date": "1999-10-15", "vote_average": 8.4}
			]
		}`))
	})

	movies, hasMore, err := client.PopularMovies(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, hasMore)
	assert.Len(t, movies, 1)
	assert.Equal(t, int64(550), movies[0].ID)
	assert.Equal(t, "Clube da Luta", movies[0].Title)
}

func TestMovieDetailsAppendsCredits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(`{
			"id": 550, "title": "Clube da Luta", "runtime": 139,
			"genres": [{"name": "Drama"}],
			"credits": {"crew": [{"name": "David Fincher", "job": "Director"}]}
		}`))
	})

	details, err := client.MovieDetails(context.Background(), 550)
	assert.NoError(t, err)
	assert.Equal(t, 139, details.Runtime)
	assert.Equal(t, "Director", details.Credits.Crew[0].Job)
}

func TestNon2xxIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _, err := client.PopularMovies(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLastPageHasNoMore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page": 3, "total_pages": 3, "results": []}`))
	})

	_, hasMore, err := client.UpcomingMovies(context.Background(), 3)
	assert.NoError(t, err)
	assert.False(t, hasMore)
}
