package igdb

// Config holds configuration for the IGDB client.
type Config struct {
	// ClientID is the Twitch application client ID.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the Twitch application client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// BaseURL is the IGDB API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.igdb.com/v4"`
	// AuthURL is the Twitch OAuth2 token endpoint.
	AuthURL string `mapstructure:"auth_url" default:"https://id.twitch.tv/oauth2/token"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// RetryAttempts bounds retries for transient failures.
	RetryAttempts int `mapstructure:"retry_attempts" default:"3"`
}
