package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"media-orbit/core/clock"
)

// refreshMargin is how long before the reported expiry the token is
// refreshed proactively.
const refreshMargin = 100 * time.Second

// tokenSource caches an OAuth2 client-credentials bearer token.
// It moves between three states: no token, valid token, expired token.
type tokenSource struct {
	mu     sync.Mutex
	cfg    Config
	http   *http.Client
	clock  clock.Clock
	token  string
	expiry time.Time
}

func newTokenSource(cfg Config, httpClient *http.Client, clk clock.Clock) *tokenSource {
	return &tokenSource{
		cfg:   cfg,
		http:  httpClient,
		clock: clk,
	}
}

// Token returns a bearer token, authenticating if none is cached or the
// cached one is within the refresh margin of its expiry.
func (t *tokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && t.clock.Now().Before(t.expiry.Add(-refreshMargin)) {
		return t.token, nil
	}
	return t.authenticate(ctx)
}

// Invalidate discards the cached token. The next Token call re-authenticates.
func (t *tokenSource) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
	t.expiry = time.Time{}
}

func (t *tokenSource) authenticate(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {t.cfg.ClientID},
		"client_secret": {t.cfg.ClientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("igdb: build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("igdb: auth: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("igdb: auth status %d", res.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("igdb: decode auth response: %w", err)
	}

	t.token = body.AccessToken
	t.expiry = t.clock.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return t.token, nil
}
