package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"media-orbit/core/clock"
	"media-orbit/core/source"
)

// Named is a referenced object carrying only a display name.
type Named struct {
	Name string `json:"name"`
}

// InvolvedCompany links a game to a company with role flags.
type InvolvedCompany struct {
	Company   Named `json:"company"`
	Developer bool  `json:"developer"`
	Publisher bool  `json:"publisher"`
}

// Website is an external link with an IGDB category code.
type Website struct {
	URL      string `json:"url"`
	Category int    `json:"category"`
}

// Game is a game record from the /games endpoint.
type Game struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Summary          string  `json:"summary"`
	FirstReleaseDate int64   `json:"first_release_date"`
	Rating           float64 `json:"rating"`
	Cover            struct {
		URL string `json:"url"`
	} `json:"cover"`
	Genres            []Named           `json:"genres"`
	Platforms         []Named           `json:"platforms"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
	Websites          []Website         `json:"websites"`
}

const gameFields = `fields name, summary, cover.url, first_release_date, rating,
	genres.name, platforms.name,
	involved_companies.company.name, involved_companies.developer, involved_companies.publisher,
	websites.url, websites.category;`

// Client talks to the IGDB API using the Twitch OAuth2 client-credentials
// flow. The bearer token is cached and refreshed proactively before expiry
// and reactively on a 401 response.
type Client struct {
	cfg    Config
	http   *http.Client
	tokens *tokenSource
	clock  clock.Clock
}

// NewClient creates an IGDB client. A nil clk defaults to the system clock.
func NewClient(cfg Config, clk clock.Clock) *Client {
	if clk == nil {
		clk = clock.New()
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	httpClient := &http.Client{Timeout: time.Duration(timeout) * time.Second}
	return &Client{
		cfg:    cfg,
		http:   httpClient,
		tokens: newTokenSource(cfg, httpClient, clk),
		clock:  clk,
	}
}

// PopularGames fetches highly rated released games.
func (c *Client) PopularGames(ctx context.Context, limit int) ([]Game, error) {
	query := fmt.Sprintf(`%s
	where rating > 80 & first_release_date != null;
	sort rating desc;
	limit %d;`, gameFields, limit)
	return c.games(ctx, query)
}

// UpcomingGames fetches games with a release date in the future.
func (c *Client) UpcomingGames(ctx context.Context, limit int) ([]Game, error) {
	query := fmt.Sprintf(`%s
	where first_release_date > %d;
	sort first_release_date asc;
	limit %d;`, gameFields, c.clock.Now().Unix(), limit)
	return c.games(ctx, query)
}

func (c *Client) games(ctx context.Context, query string) ([]Game, error) {
	var out []Game
	err := source.Retry(ctx, c.clock, c.cfg.RetryAttempts, time.Second, func() error {
		return c.post(ctx, "/games", query, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// post executes an IGDB query-body request. On a 401 it invalidates the
// cached token and retries exactly once with a fresh one.
func (c *Client) post(ctx context.Context, endpoint, query string, out any) error {
	res, err := c.do(ctx, endpoint, query)
	if err != nil {
		return err
	}
	if res.StatusCode == http.StatusUnauthorized {
		res.Body.Close()
		c.tokens.Invalidate()
		if res, err = c.do(ctx, endpoint, query); err != nil {
			return err
		}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("igdb: status %d for %s", res.StatusCode, endpoint)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("igdb: decode %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint, query string) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("igdb: build request: %w", err)
	}
	req.Header.Set("Client-ID", c.cfg.ClientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/plain")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("igdb: %w", err)
	}
	return res, nil
}
