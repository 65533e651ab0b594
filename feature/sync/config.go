package sync

// Config holds configuration for the synchronization pipeline.
type Config struct {
	// MoviePages is how many pages of each TMDB movie listing to walk.
	MoviePages int `mapstructure:"movie_pages" default:"3"`
	// SeriesPages is how many pages of the TMDB popular TV listing to walk.
	SeriesPages int `mapstructure:"series_pages" default:"3"`
	// AnimePages is how many pages of the Jikan top anime listing to walk.
	AnimePages int `mapstructure:"anime_pages" default:"2"`
	// GameLimit caps how many games each IGDB query returns.
	GameLimit int `mapstructure:"game_limit" default:"50"`

	// PollSeconds is the scheduler's polling interval.
	PollSeconds int `mapstructure:"poll_seconds" default:"60"`

	// FullAt is the daily HH:MM trigger for a full sync of every type.
	FullAt string `mapstructure:"full_at" default:"03:00"`
	// MoviesAt is the daily HH:MM trigger for the movie sync.
	MoviesAt string `mapstructure:"movies_at" default:"09:00"`
	// SeriesAt is the daily HH:MM trigger for the series sync.
	SeriesAt string `mapstructure:"series_at" default:"12:00"`
	// AnimeAt is the daily HH:MM trigger for the anime sync.
	AnimeAt string `mapstructure:"anime_at" default:"15:00"`
	// GamesAt is the daily HH:MM trigger for the game sync.
	GamesAt string `mapstructure:"games_at" default:"18:00"`
	// RemindersAt is the daily HH:MM trigger for release reminders.
	RemindersAt string `mapstructure:"reminders_at" default:"07:00"`
}
