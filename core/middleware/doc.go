// Package middleware groups the HTTP middleware used by the API server.
//
// Each middleware lives in its own subpackage:
//   - rayid: assigns a unique request identifier for log correlation
//   - auth: validates bearer tokens for protected routes
package middleware
