package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JWTSecret signs user authentication tokens.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// TokenTTLHours is the lifetime of issued auth tokens.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"168"`
	// SyncSecret protects the manual sync trigger endpoint.
	SyncSecret string `mapstructure:"sync_secret" default:""`
}
