// Package catalog exposes the read side of the media catalog.
//
// Listings are paginated with a fixed envelope (results, page, total_pages,
// total_results) and ordered by rating. Search matches both curated and API
// titles across the four content types and returns a unified result list
// tagged by type; trending is the same shape fed by rating order.
//
// The catalog is read-only over HTTP. All writes happen through the sync
// pipeline or by editors operating directly on the curated columns.
package catalog
