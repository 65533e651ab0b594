package jikan_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"media-orbit/core/source/jikan"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func newTestClient(t *testing.T, clk *fakeClock, handler http.HandlerFunc) *jikan.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return jikan.NewClient(jikan.Config{
		BaseURL:       srv.URL,
		MinIntervalMS: 1000,
		RetryAttempts: 1,
	}, clk)
}

func TestTopAnime(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	client := newTestClient(t, clk, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top/anime", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{
			"data": [{"mal_id": 5114, "title": "Hagane no Renkinjutsushi", "title_english": "Fullmetal Alchemist: Brotherhood", "score": 9.1, "episodes": 64}],
			"pagination": {"has_next_page": true}
		}`))
	})

	anime, hasMore, err := client.TopAnime(context.Background(), 2)
	assert.NoError(t, err)
	assert.True(t, hasMore)
	assert.Len(t, anime, 1)
	assert.Equal(t, int64(5114), anime[0].MALID)
}

func TestConsecutiveRequestsArePaced(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	client := newTestClient(t, clk, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [], "pagination": {"has_next_page": false}}`))
	})

	_, _, err := client.TopAnime(context.Background(), 1)
	assert.NoError(t, err)
	_, _, err = client.TopAnime(context.Background(), 2)
	assert.NoError(t, err)

	// The second request must have waited out the remainder of the
	// one-second interval.
	assert.Len(t, clk.sleeps, 1)
	assert.LessOrEqual(t, clk.sleeps[0], time.Second)
	assert.Greater(t, clk.sleeps[0], time.Duration(0))
}

func TestCharactersEndpoint(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	client := newTestClient(t, clk, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/5114/characters", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": [
			{"character": {"mal_id": 11, "name": "Edward Elric"},
			 "voice_actors": [{"person": {"mal_id": 12, "name": "Romi Park"}, "language": "Japanese"}]}
		]}`))
	})

	chars, err := client.AnimeCharacters(context.Background(), 5114)
	assert.NoError(t, err)
	assert.Len(t, chars, 1)
	assert.Equal(t, "Japanese", chars[0].VoiceActors[0].Language)
}

func TestNon2xxIsAnError(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	client := newTestClient(t, clk, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.AnimeStaff(context.Background(), 1)
	assert.Error(t, err)
}
