package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"media-orbit/core/clock"
	"media-orbit/core/source"
)

// Movie is a listing entry from the movie endpoints.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// TVShow is a listing entry from the TV endpoints.
type TVShow struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// NamedRef is a referenced object carrying only a display name.
type NamedRef struct {
	Name string `json:"name"`
}

// CrewMember is one credits crew entry.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits holds the crew portion of an append_to_response=credits payload.
type Credits struct {
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the full movie payload including credits.
type MovieDetails struct {
	Movie
	Runtime int        `json:"runtime"`
	Genres  []NamedRef `json:"genres"`
	Credits Credits    `json:"credits"`
}

// TVDetails is the full TV payload including credits.
type TVDetails struct {
	TVShow
	NumberOfSeasons  int        `json:"number_of_seasons"`
	NumberOfEpisodes int        `json:"number_of_episodes"`
	CreatedBy        []NamedRef `json:"created_by"`
	Genres           []NamedRef `json:"genres"`
	Status           string     `json:"status"`
}

type moviePage struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Results    []Movie `json:"results"`
}

type tvPage struct {
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
	Results    []TVShow `json:"results"`
}

// Client talks to the TMDB REST API. Authentication is an API key query
// parameter; TMDB enforces no client-side rate limit, pacing is left to the
// caller.
type Client struct {
	cfg   Config
	http  *http.Client
	clock clock.Clock
}

// NewClient creates a TMDB client. A nil clk defaults to the system clock.
func NewClient(cfg Config, clk clock.Clock) *Client {
	if clk == nil {
		clk = clock.New()
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		clock: clk,
	}
}

// ImageBaseURL returns the base URL for poster paths.
func (c *Client) ImageBaseURL() string {
	return c.cfg.ImageBaseURL
}

// PopularMovies fetches one page of the popular movies listing.
func (c *Client) PopularMovies(ctx context.Context, page int) ([]Movie, bool, error) {
	return c.moviePage(ctx, "/movie/popular", page)
}

// NowPlayingMovies fetches one page of the now-playing listing.
func (c *Client) NowPlayingMovies(ctx context.Context, page int) ([]Movie, bool, error) {
	return c.moviePage(ctx, "/movie/now_playing", page)
}

// UpcomingMovies fetches one page of the upcoming listing.
func (c *Client) UpcomingMovies(ctx context.Context, page int) ([]Movie, bool, error) {
	return c.moviePage(ctx, "/movie/upcoming", page)
}

// MovieDetails fetches a single movie with credits appended.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	var out MovieDetails
	params := url.Values{"append_to_response": {"credits"}}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PopularTV fetches one page of the popular TV listing.
func (c *Client) PopularTV(ctx context.Context, page int) ([]TVShow, bool, error) {
	var out tvPage
	params := url.Values{"page": {fmt.Sprint(page)}}
	if err := c.get(ctx, "/tv/popular", params, &out); err != nil {
		return nil, false, err
	}
	return out.Results, out.Page < out.TotalPages, nil
}

// TVDetails fetches a single TV show with credits appended.
func (c *Client) TVDetails(ctx context.Context, id int64) (*TVDetails, error) {
	var out TVDetails
	params := url.Values{"append_to_response": {"credits"}}
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) moviePage(ctx context.Context, path string, page int) ([]Movie, bool, error) {
	var out moviePage
	params := url.Values{"page": {fmt.Sprint(page)}}
	if err := c.get(ctx, path, params, &out); err != nil {
		return nil, false, err
	}
	return out.Results, out.Page < out.TotalPages, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u, err := url.Parse(c.cfg.BaseURL + path)
	if err != nil {
		return fmt.Errorf("tmdb: invalid url: %w", err)
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("language", c.cfg.Language)
	u.RawQuery = q.Encode()

	return source.Retry(ctx, c.clock, c.cfg.RetryAttempts, time.Second, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return fmt.Errorf("tmdb: build request: %w", err)
		}
		res, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("tmdb: %w", err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("tmdb: status %d for %s", res.StatusCode, path)
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("tmdb: decode %s: %w", path, err)
		}
		return nil
	})
}
