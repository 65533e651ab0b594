package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"media-orbit/core/clock"
	"media-orbit/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reminder horizons in days before a release.
var reminderHorizons = []int{7, 1}

const categoryRelease = "release"

// preferences is the decoded shape of the user preferences JSON. Favorites
// are lists of upstream external IDs, not catalog row IDs.
type preferences struct {
	FavoriteMovies []int64 `json:"favorite_movies"`
	FavoriteSeries []int64 `json:"favorite_series"`
	FavoriteAnime  []int64 `json:"favorite_anime"`
	FavoriteGames  []int64 `json:"favorite_games"`
}

// Checker scans upcoming releases and notifies users who favorited them.
type Checker struct {
	db     *gorm.DB
	clock  clock.Clock
	logger *zap.Logger
}

// NewChecker creates the release reminder checker. A nil clk defaults to
// the system clock.
func NewChecker(db *gorm.DB, clk clock.Clock, logger *zap.Logger) *Checker {
	if clk == nil {
		clk = clock.New()
	}
	return &Checker{db: db, clock: clk, logger: logger}
}

type upcomingEntry struct {
	externalID int64
	title      string
	date       string
}

// Run checks every reminder horizon and writes one notification per user
// and release. Re-running the same day is idempotent.
func (c *Checker) Run(ctx context.Context) error {
	var users []models.User
	if err := c.db.WithContext(ctx).Find(&users).Error; err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	created := 0
	for _, horizon := range reminderHorizons {
		target := c.clock.Now().UTC().AddDate(0, 0, horizon).Format("2006-01-02")

		byType := map[string][]upcomingEntry{
			"movie":  c.upcoming(ctx, &models.Movie{}, target),
			"series": c.upcoming(ctx, &models.Series{}, target),
			"anime":  c.upcoming(ctx, &models.Anime{}, target),
			"game":   c.upcoming(ctx, &models.Game{}, target),
		}

		for _, user := range users {
			prefs, err := decodePreferences(user.Preferences)
			if err != nil {
				c.logger.Warn("Unreadable user preferences, skipping",
					zap.Uint("user_id", user.ID), zap.Error(err))
				continue
			}

			favorites := map[string][]int64{
				"movie":  prefs.FavoriteMovies,
				"series": prefs.FavoriteSeries,
				"anime":  prefs.FavoriteAnime,
				"game":   prefs.FavoriteGames,
			}

			for contentType, ids := range favorites {
				for _, entry := range byType[contentType] {
					if !containsID(ids, entry.externalID) {
						continue
					}
					ok, err := c.notify(ctx, user.ID, entry, horizon)
					if err != nil {
						return err
					}
					if ok {
						created++
					}
				}
			}
		}
	}

	c.logger.Info("Release reminder pass finished", zap.Int("created", created))
	return nil
}

// upcoming lists entries of one content type releasing on the target date.
// The curated date wins when set; otherwise the API date is consulted.
func (c *Checker) upcoming(ctx context.Context, model any, target string) []upcomingEntry {
	rows := make([]struct {
		ExternalID   int64
		CuratedTitle string
		APITitle     string
	}, 0)

	err := c.db.WithContext(ctx).Model(model).
		Where("curated_release_date = ? OR (curated_release_date IS NULL AND api_release_date = ?)", target, target).
		Find(&rows).Error
	if err != nil {
		c.logger.Warn("Upcoming release query failed", zap.Error(err))
		return nil
	}

	out := make([]upcomingEntry, 0, len(rows))
	for _, row := range rows {
		title := row.CuratedTitle
		if title == "" {
			title = row.APITitle
		}
		out = append(out, upcomingEntry{externalID: row.ExternalID, title: title, date: target})
	}
	return out
}

// notify writes the reminder unless the identical one already exists.
func (c *Checker) notify(ctx context.Context, userID uint, entry upcomingEntry, horizon int) (bool, error) {
	message := fmt.Sprintf("%s releases on %s", entry.title, entry.date)

	var count int64
	err := c.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND category = ? AND message = ?", userID, categoryRelease, message).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check existing notification: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	n := models.Notification{
		UserID:    userID,
		Title:     fmt.Sprintf("Release in %d day(s)", horizon),
		Message:   message,
		Category:  categoryRelease,
		Important: horizon == 1,
	}
	if err := c.db.WithContext(ctx).Create(&n).Error; err != nil {
		return false, fmt.Errorf("create notification: %w", err)
	}
	return true, nil
}

func decodePreferences(raw []byte) (preferences, error) {
	var prefs preferences
	if len(raw) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
