package reconcile

import (
	"errors"
	"fmt"

	"media-orbit/feature/catalog/models"

	"gorm.io/gorm"
)

// ErrStore wraps database write failures so callers can distinguish them
// from per-record mapping problems and abort the pass.
var ErrStore = errors.New("store failure")

// Outcome says what a reconciliation did to the row.
type Outcome int

const (
	// Created means a new row was inserted.
	Created Outcome = iota
	// Updated means an existing row had its API columns refreshed.
	Updated
)

// API column sets refreshed on update. Curated columns are deliberately
// absent: once written at insert they belong to editors.
var (
	movieAPIColumns = []string{
		"api_title", "synopsis", "api_poster_url", "api_release_date",
		"rating", "genres", "duration_text", "director", "writer",
		"now_showing", "upcoming", "updated_at",
	}
	seriesAPIColumns = []string{
		"api_title", "synopsis", "api_poster_url", "api_release_date",
		"rating", "genres", "creators", "season_count", "episode_count",
		"status", "updated_at",
	}
	animeAPIColumns = []string{
		"api_title", "synopsis", "api_poster_url", "api_release_date",
		"rating", "genres", "tags", "staff", "characters",
		"source_material", "studio", "dub_status", "episode_count",
		"next_episode_marker", "external_link", "trailer_id", "updated_at",
	}
	gameAPIColumns = []string{
		"api_title", "synopsis", "api_poster_url", "api_release_date",
		"rating", "genres", "platforms", "developers", "publishers",
		"digital_storefronts", "updated_at",
	}
)

// Movie reconciles one mapped movie against the store, keyed by external ID.
func Movie(db *gorm.DB, incoming models.Movie) (Outcome, error) {
	var existing models.Movie
	err := db.Where("external_id = ?", incoming.ExternalID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seedCurated(&incoming.CuratedTitle, incoming.APITitle)
		incoming.CuratedPosterURL = clonePtr(incoming.APIPosterURL)
		incoming.CuratedReleaseDate = clonePtr(incoming.APIReleaseDate)
		if err := db.Create(&incoming).Error; err != nil {
			return Created, storeErr("insert movie", incoming.ExternalID, err)
		}
		return Created, nil
	case err != nil:
		return Updated, storeErr("lookup movie", incoming.ExternalID, err)
	}

	if err := db.Model(&existing).Select(movieAPIColumns).Updates(&incoming).Error; err != nil {
		return Updated, storeErr("update movie", incoming.ExternalID, err)
	}
	return Updated, nil
}

// Series reconciles one mapped series entry.
func Series(db *gorm.DB, incoming models.Series) (Outcome, error) {
	var existing models.Series
	err := db.Where("external_id = ?", incoming.ExternalID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seedCurated(&incoming.CuratedTitle, incoming.APITitle)
		incoming.CuratedPosterURL = clonePtr(incoming.APIPosterURL)
		incoming.CuratedReleaseDate = clonePtr(incoming.APIReleaseDate)
		if err := db.Create(&incoming).Error; err != nil {
			return Created, storeErr("insert series", incoming.ExternalID, err)
		}
		return Created, nil
	case err != nil:
		return Updated, storeErr("lookup series", incoming.ExternalID, err)
	}

	if err := db.Model(&existing).Select(seriesAPIColumns).Updates(&incoming).Error; err != nil {
		return Updated, storeErr("update series", incoming.ExternalID, err)
	}
	return Updated, nil
}

// Anime reconciles one mapped anime entry.
func Anime(db *gorm.DB, incoming models.Anime) (Outcome, error) {
	var existing models.Anime
	err := db.Where("external_id = ?", incoming.ExternalID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seedCurated(&incoming.CuratedTitle, incoming.APITitle)
		incoming.CuratedPosterURL = clonePtr(incoming.APIPosterURL)
		incoming.CuratedReleaseDate = clonePtr(incoming.APIReleaseDate)
		if err := db.Create(&incoming).Error; err != nil {
			return Created, storeErr("insert anime", incoming.ExternalID, err)
		}
		return Created, nil
	case err != nil:
		return Updated, storeErr("lookup anime", incoming.ExternalID, err)
	}

	if err := db.Model(&existing).Select(animeAPIColumns).Updates(&incoming).Error; err != nil {
		return Updated, storeErr("update anime", incoming.ExternalID, err)
	}
	return Updated, nil
}

// Game reconciles one mapped game entry.
func Game(db *gorm.DB, incoming models.Game) (Outcome, error) {
	var existing models.Game
	err := db.Where("external_id = ?", incoming.ExternalID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seedCurated(&incoming.CuratedTitle, incoming.APITitle)
		incoming.CuratedPosterURL = clonePtr(incoming.APIPosterURL)
		incoming.CuratedReleaseDate = clonePtr(incoming.APIReleaseDate)
		if err := db.Create(&incoming).Error; err != nil {
			return Created, storeErr("insert game", incoming.ExternalID, err)
		}
		return Created, nil
	case err != nil:
		return Updated, storeErr("lookup game", incoming.ExternalID, err)
	}

	if err := db.Model(&existing).Select(gameAPIColumns).Updates(&incoming).Error; err != nil {
		return Updated, storeErr("update game", incoming.ExternalID, err)
	}
	return Updated, nil
}

// seedCurated mirrors the API title into the curated slot on first insert.
func seedCurated(curated *string, api string) {
	if *curated == "" {
		*curated = api
	}
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func storeErr(op string, externalID int64, err error) error {
	return fmt.Errorf("%s %d: %w: %w", op, externalID, ErrStore, err)
}
