// Package mapper translates upstream source payloads into catalog entities.
//
// All functions are pure: they take decoded API payloads and return model
// values, with no I/O. Normalization rules live here so the reconciler and
// orchestrator stay source-agnostic:
//
//   - ratings are normalized to the 0-10 scale and clamped
//   - dates become YYYY-MM-DD strings, composed from parts or unix epochs
//   - nested name lists flatten to plain string lists stored as JSON
//   - image URLs are absolutized against the source's image base
package mapper
