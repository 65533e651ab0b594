// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure for server settings: the listen port, the JWT
// signing secret and token lifetime, and the shared secret that protects the
// manual sync trigger.
package server
