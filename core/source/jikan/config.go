package jikan

// Config holds configuration for the Jikan client.
type Config struct {
	// BaseURL is the API root. Jikan requires no authentication.
	BaseURL string `mapstructure:"base_url" default:"https://api.jikan.moe/v4"`
	// MinIntervalMS is the minimum spacing between requests in
	// milliseconds. Jikan allows roughly one request per second.
	MinIntervalMS int `mapstructure:"min_interval_ms" default:"1000"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// RetryAttempts bounds retries for transient failures.
	RetryAttempts int `mapstructure:"retry_attempts" default:"3"`
}
