package tmdb

// Config holds configuration for the TMDB client.
type Config struct {
	// APIKey is the TMDB API key sent as a query parameter.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.themoviedb.org/3"`
	// ImageBaseURL is prepended to relative poster paths.
	ImageBaseURL string `mapstructure:"image_base_url" default:"https://image.tmdb.org/t/p/w500"`
	// Language is the preferred localization for titles and synopses.
	Language string `mapstructure:"language" default:"pt-BR"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// RetryAttempts bounds retries for transient failures.
	RetryAttempts int `mapstructure:"retry_attempts" default:"3"`
}
