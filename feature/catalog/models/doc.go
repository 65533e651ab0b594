// Package models defines the persistent catalog entities.
//
// Each content type (Movie, Series, Anime, Game) shares the same curated/API
// field split: the *Curated* columns belong to editors and are only written
// when a row is first created from an upstream record, while the *API*
// columns are refreshed on every sync pass. The external ID is the sole
// reconciliation key against the upstream sources.
//
// List-shaped attributes (genres, platforms, staff, characters) are stored
// as JSON columns and replaced wholesale on update.
package models
