package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"media-orbit/core/clock"
	"media-orbit/core/ratelimit"
	"media-orbit/core/source"
)

// Image is the jpg variant of a Jikan image set.
type Image struct {
	JPG struct {
		ImageURL string `json:"image_url"`
	} `json:"jpg"`
}

// Named is an entry carrying only a display name (genres, studios, themes).
type Named struct {
	Name string `json:"name"`
}

// DateParts is the decomposed half of an aired range.
type DateParts struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Anime is the full anime payload from the top listing and detail endpoints.
type Anime struct {
	MALID         int64   `json:"mal_id"`
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	TitleEnglish  string  `json:"title_english"`
	TitleJapanese string  `json:"title_japanese"`
	Synopsis      string  `json:"synopsis"`
	Images        Image   `json:"images"`
	Score         float64 `json:"score"`
	Episodes      int     `json:"episodes"`
	Source        string  `json:"source"`
	Aired         struct {
		Prop struct {
			From DateParts `json:"from"`
		} `json:"prop"`
	} `json:"aired"`
	Broadcast struct {
		String string `json:"string"`
	} `json:"broadcast"`
	Trailer struct {
		YoutubeID string `json:"youtube_id"`
	} `json:"trailer"`
	Genres       []Named `json:"genres"`
	Themes       []Named `json:"themes"`
	Demographics []Named `json:"demographics"`
	Studios      []Named `json:"studios"`
	Streaming    []Named `json:"streaming"`
}

// Person is a character or staff person reference.
type Person struct {
	MALID  int64  `json:"mal_id"`
	Name   string `json:"name"`
	Images Image  `json:"images"`
}

// VoiceActor is one voice-acting credit on a character.
type VoiceActor struct {
	Person   Person `json:"person"`
	Language string `json:"language"`
}

// CharacterEntry is one entry of the characters endpoint.
type CharacterEntry struct {
	Character   Person       `json:"character"`
	VoiceActors []VoiceActor `json:"voice_actors"`
}

// StaffEntry is one entry of the staff endpoint.
type StaffEntry struct {
	Person    Person   `json:"person"`
	Positions []string `json:"positions"`
}

type listEnvelope[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		HasNextPage bool `json:"has_next_page"`
	} `json:"pagination"`
}

// Client talks to the Jikan (MyAnimeList) API. It is unauthenticated and
// self-paces with a blocking interval limiter so callers cannot exceed the
// upstream rate limit.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *ratelimit.Limiter
	clock   clock.Clock
}

// NewClient creates a Jikan client. A nil clk defaults to the system clock.
func NewClient(cfg Config, clk clock.Clock) *Client {
	if clk == nil {
		clk = clock.New()
	}
	interval := time.Duration(cfg.MinIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter: ratelimit.New(interval, clk),
		clock:   clk,
	}
}

// TopAnime fetches one page of the top anime listing.
func (c *Client) TopAnime(ctx context.Context, page int) ([]Anime, bool, error) {
	var out listEnvelope[Anime]
	if err := c.get(ctx, fmt.Sprintf("/top/anime?page=%d", page), &out); err != nil {
		return nil, false, err
	}
	return out.Data, out.Pagination.HasNextPage, nil
}

// AnimeCharacters fetches the character list with voice-acting credits.
func (c *Client) AnimeCharacters(ctx context.Context, malID int64) ([]CharacterEntry, error) {
	var out listEnvelope[CharacterEntry]
	if err := c.get(ctx, fmt.Sprintf("/anime/%d/characters", malID), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// AnimeStaff fetches the staff list.
func (c *Client) AnimeStaff(ctx context.Context, malID int64) ([]StaffEntry, error) {
	var out listEnvelope[StaffEntry]
	if err := c.get(ctx, fmt.Sprintf("/anime/%d/staff", malID), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return source.Retry(ctx, c.clock, c.cfg.RetryAttempts, time.Second, func() error {
		// Pace inside the retry loop: a retried request is still a request.
		c.limiter.Wait()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
		if err != nil {
			return fmt.Errorf("jikan: build request: %w", err)
		}
		res, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("jikan: %w", err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("jikan: status %d for %s", res.StatusCode, path)
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("jikan: decode %s: %w", path, err)
		}
		return nil
	})
}
