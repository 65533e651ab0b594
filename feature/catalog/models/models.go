package models

import (
	"time"

	"gorm.io/datatypes"
)

// Dub status values for anime entries.
const (
	DubStatusDubbed    = "dubbed"
	DubStatusSubtitled = "subtitled"
)

// Movie is a catalog movie entry. Fields split into curated and API pairs:
// the curated side is editorial and written only when the row is created,
// the API side is refreshed on every sync.
type Movie struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ExternalID int64 `gorm:"uniqueIndex;not null" json:"external_id"`

	CuratedTitle       string  `json:"curated_title"`
	APITitle           string  `json:"api_title"`
	Synopsis           string  `gorm:"type:text" json:"synopsis"`
	CuratedPosterURL   *string `json:"curated_poster_url"`
	APIPosterURL       *string `json:"api_poster_url"`
	CuratedReleaseDate *string `json:"curated_release_date"`
	APIReleaseDate     *string `json:"api_release_date"`

	Rating           float64        `json:"rating"`
	Genres           datatypes.JSON `json:"genres"`
	CuratedPlatforms datatypes.JSON `json:"curated_platforms"`
	DurationText     *string        `json:"duration_text"`
	Director         *string        `json:"director"`
	Writer           *string        `json:"writer"`

	NowShowing bool `json:"now_showing"`
	Upcoming   bool `json:"upcoming"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Series is a catalog TV series entry.
type Series struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ExternalID int64 `gorm:"uniqueIndex;not null" json:"external_id"`

	CuratedTitle       string  `json:"curated_title"`
	APITitle           string  `json:"api_title"`
	Synopsis           string  `gorm:"type:text" json:"synopsis"`
	CuratedPosterURL   *string `json:"curated_poster_url"`
	APIPosterURL       *string `json:"api_poster_url"`
	CuratedReleaseDate *string `json:"curated_release_date"`
	APIReleaseDate     *string `json:"api_release_date"`

	Rating           float64        `json:"rating"`
	Genres           datatypes.JSON `json:"genres"`
	CuratedPlatforms datatypes.JSON `json:"curated_platforms"`
	Creators         datatypes.JSON `json:"creators"`
	SeasonCount      int            `json:"season_count"`
	EpisodeCount     int            `json:"episode_count"`
	Status           string         `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Anime is a catalog anime entry sourced from MyAnimeList.
type Anime struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ExternalID int64 `gorm:"uniqueIndex;not null" json:"external_id"`

	CuratedTitle       string  `json:"curated_title"`
	APITitle           string  `json:"api_title"`
	Synopsis           string  `gorm:"type:text" json:"synopsis"`
	CuratedPosterURL   *string `json:"curated_poster_url"`
	APIPosterURL       *string `json:"api_poster_url"`
	CuratedReleaseDate *string `json:"curated_release_date"`
	APIReleaseDate     *string `json:"api_release_date"`

	Rating           float64        `json:"rating"`
	Genres           datatypes.JSON `json:"genres"`
	Tags             datatypes.JSON `json:"tags"`
	CuratedPlatforms datatypes.JSON `json:"curated_platforms"`
	Staff            datatypes.JSON `json:"staff"`
	Characters       datatypes.JSON `json:"characters"`

	SourceMaterial    string  `json:"source_material"`
	Studio            string  `json:"studio"`
	DubStatus         string  `json:"dub_status"`
	EpisodeCount      int     `json:"episode_count"`
	NextEpisodeMarker *string `json:"next_episode_marker"`
	ExternalLink      *string `json:"external_link"`
	TrailerID         *string `json:"trailer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Game is a catalog game entry sourced from IGDB.
type Game struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ExternalID int64 `gorm:"uniqueIndex;not null" json:"external_id"`

	CuratedTitle       string  `json:"curated_title"`
	APITitle           string  `json:"api_title"`
	Synopsis           string  `gorm:"type:text" json:"synopsis"`
	CuratedPosterURL   *string `json:"curated_poster_url"`
	APIPosterURL       *string `json:"api_poster_url"`
	CuratedReleaseDate *string `json:"curated_release_date"`
	APIReleaseDate     *string `json:"api_release_date"`

	Rating             float64        `json:"rating"`
	Genres             datatypes.JSON `json:"genres"`
	CuratedPlatforms   datatypes.JSON `json:"curated_platforms"`
	Platforms          datatypes.JSON `json:"platforms"`
	Developers         datatypes.JSON `json:"developers"`
	Publishers         datatypes.JSON `json:"publishers"`
	DigitalStorefronts datatypes.JSON `json:"digital_storefronts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is an account that can authenticate against the API.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `json:"-"`
	AvatarURL    *string        `json:"avatar_url"`
	Preferences  datatypes.JSON `json:"preferences"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Notification is a message delivered to a user, e.g. a release reminder.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Category  string    `json:"category"`
	Read      bool      `json:"read"`
	Important bool      `json:"important"`
	CreatedAt time.Time `json:"created_at"`
}

// All returns every catalog model, in migration order.
func All() []any {
	return []any{
		&Movie{}, &Series{}, &Anime{}, &Game{},
		&User{}, &Notification{},
	}
}
