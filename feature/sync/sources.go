package sync

import (
	"context"

	"media-orbit/core/source/igdb"
	"media-orbit/core/source/jikan"
	"media-orbit/core/source/tmdb"
)

// MovieSource is the slice of the TMDB client the movie pass needs.
type MovieSource interface {
	PopularMovies(ctx context.Context, page int) ([]tmdb.Movie, bool, error)
	NowPlayingMovies(ctx context.Context, page int) ([]tmdb.Movie, bool, error)
	UpcomingMovies(ctx context.Context, page int) ([]tmdb.Movie, bool, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.MovieDetails, error)
	ImageBaseURL() string
}

// SeriesSource is the slice of the TMDB client the series pass needs.
type SeriesSource interface {
	PopularTV(ctx context.Context, page int) ([]tmdb.TVShow, bool, error)
	TVDetails(ctx context.Context, id int64) (*tmdb.TVDetails, error)
	ImageBaseURL() string
}

// AnimeSource is the slice of the Jikan client the anime pass needs.
type AnimeSource interface {
	TopAnime(ctx context.Context, page int) ([]jikan.Anime, bool, error)
	AnimeCharacters(ctx context.Context, malID int64) ([]jikan.CharacterEntry, error)
	AnimeStaff(ctx context.Context, malID int64) ([]jikan.StaffEntry, error)
}

// GameSource is the slice of the IGDB client the game pass needs.
type GameSource interface {
	PopularGames(ctx context.Context, limit int) ([]igdb.Game, error)
	UpcomingGames(ctx context.Context, limit int) ([]igdb.Game, error)
}
