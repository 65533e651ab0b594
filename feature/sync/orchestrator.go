package sync

import (
	"context"
	"fmt"

	"media-orbit/core/runlock"
	"media-orbit/core/source/igdb"
	"media-orbit/core/source/jikan"
	"media-orbit/core/source/tmdb"
	"media-orbit/feature/sync/mapper"
	"media-orbit/feature/sync/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Content type keys, used for run locks and the manual trigger endpoint.
const (
	TypeMovies = "movies"
	TypeSeries = "series"
	TypeAnime  = "animes"
	TypeGames  = "games"
)

// Summary counts what one sync pass did.
type Summary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Orchestrator drives the sync passes: fetch upstream listings, map them to
// catalog entities and reconcile them against the store. One pass per
// content type, each guarded by a run lock and wrapped in one transaction.
type Orchestrator struct {
	db     *gorm.DB
	logger *zap.Logger
	locks  *runlock.Registry
	cfg    Config

	movies MovieSource
	series SeriesSource
	anime  AnimeSource
	games  GameSource
}

// NewOrchestrator wires the sync pipeline. Sources are interfaces so tests
// can inject fakes.
func NewOrchestrator(db *gorm.DB, logger *zap.Logger, cfg Config,
	movies MovieSource, series SeriesSource, anime AnimeSource, games GameSource) *Orchestrator {
	return &Orchestrator{
		db:     db,
		logger: logger,
		locks:  runlock.NewRegistry(),
		cfg:    cfg,
		movies: movies,
		series: series,
		anime:  anime,
		games:  games,
	}
}

type movieListing struct {
	nowShowing bool
	upcoming   bool
}

// SyncMovies walks the popular, now-playing and upcoming listings,
// deduplicates by external ID with merged listing flags, and reconciles
// each movie with its detail payload.
func (o *Orchestrator) SyncMovies(ctx context.Context) (Summary, error) {
	if !o.locks.TryLock(TypeMovies) {
		o.logger.Info("Sync already running, skipping", zap.String("type", TypeMovies))
		return Summary{}, nil
	}
	defer o.locks.Unlock(TypeMovies)

	seen := make(map[int64]*movieListing)
	var order []int64

	collect := func(fetch func(context.Context, int) ([]tmdb.Movie, bool, error), nowShowing, upcoming bool) error {
		for page := 1; page <= o.cfg.MoviePages; page++ {
			movies, hasMore, err := fetch(ctx, page)
			if err != nil {
				return err
			}
			for _, m := range movies {
				entry, ok := seen[m.ID]
				if !ok {
					entry = &movieListing{}
					seen[m.ID] = entry
					order = append(order, m.ID)
				}
				entry.nowShowing = entry.nowShowing || nowShowing
				entry.upcoming = entry.upcoming || upcoming
			}
			if !hasMore {
				break
			}
		}
		return nil
	}

	if err := collect(o.movies.PopularMovies, false, false); err != nil {
		return Summary{}, fmt.Errorf("fetch popular movies: %w", err)
	}
	if err := collect(o.movies.NowPlayingMovies, true, false); err != nil {
		return Summary{}, fmt.Errorf("fetch now-playing movies: %w", err)
	}
	if err := collect(o.movies.UpcomingMovies, false, true); err != nil {
		return Summary{}, fmt.Errorf("fetch upcoming movies: %w", err)
	}

	var summary Summary
	err := o.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range order {
			entry := seen[id]
			details, err := o.movies.MovieDetails(ctx, id)
			if err != nil {
				o.logger.Warn("Movie detail fetch failed, skipping",
					zap.Int64("external_id", id), zap.Error(err))
				continue
			}
			mapped := mapper.MapMovie(details, o.movies.ImageBaseURL(), entry.nowShowing, entry.upcoming)
			outcome, err := reconcile.Movie(tx, mapped)
			if err != nil {
				return err
			}
			summary.count(outcome)
		}
		return nil
	})
	if err != nil {
		o.logger.Error("Movie sync aborted", zap.Error(err))
		return Summary{}, err
	}

	o.logPass(TypeMovies, summary)
	return summary, nil
}

// SyncSeries walks the popular TV listing and reconciles each show with its
// detail payload.
func (o *Orchestrator) SyncSeries(ctx context.Context) (Summary, error) {
	if !o.locks.TryLock(TypeSeries) {
		o.logger.Info("Sync already running, skipping", zap.String("type", TypeSeries))
		return Summary{}, nil
	}
	defer o.locks.Unlock(TypeSeries)

	var shows []int64
	for page := 1; page <= o.cfg.SeriesPages; page++ {
		results, hasMore, err := o.series.PopularTV(ctx, page)
		if err != nil {
			return Summary{}, fmt.Errorf("fetch popular tv: %w", err)
		}
		for _, s := range results {
			shows = append(shows, s.ID)
		}
		if !hasMore {
			break
		}
	}

	var summary Summary
	err := o.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range shows {
			details, err := o.series.TVDetails(ctx, id)
			if err != nil {
				o.logger.Warn("Series detail fetch failed, skipping",
					zap.Int64("external_id", id), zap.Error(err))
				continue
			}
			outcome, err := reconcile.Series(tx, mapper.MapSeries(details, o.series.ImageBaseURL()))
			if err != nil {
				return err
			}
			summary.count(outcome)
		}
		return nil
	})
	if err != nil {
		o.logger.Error("Series sync aborted", zap.Error(err))
		return Summary{}, err
	}

	o.logPass(TypeSeries, summary)
	return summary, nil
}

// SyncAnime walks the top anime listing, enriching each entry with its
// character and staff listings.
func (o *Orchestrator) SyncAnime(ctx context.Context) (Summary, error) {
	if !o.locks.TryLock(TypeAnime) {
		o.logger.Info("Sync already running, skipping", zap.String("type", TypeAnime))
		return Summary{}, nil
	}
	defer o.locks.Unlock(TypeAnime)

	entries, err := o.collectAnime(ctx)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	err = o.db.Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			a := &entries[i]
			chars, err := o.anime.AnimeCharacters(ctx, a.MALID)
			if err != nil {
				o.logger.Warn("Anime characters fetch failed, skipping",
					zap.Int64("external_id", a.MALID), zap.Error(err))
				continue
			}
			staff, err := o.anime.AnimeStaff(ctx, a.MALID)
			if err != nil {
				o.logger.Warn("Anime staff fetch failed, skipping",
					zap.Int64("external_id", a.MALID), zap.Error(err))
				continue
			}
			outcome, err := reconcile.Anime(tx, mapper.MapAnime(a, chars, staff))
			if err != nil {
				return err
			}
			summary.count(outcome)
		}
		return nil
	})
	if err != nil {
		o.logger.Error("Anime sync aborted", zap.Error(err))
		return Summary{}, err
	}

	o.logPass(TypeAnime, summary)
	return summary, nil
}

func (o *Orchestrator) collectAnime(ctx context.Context) ([]jikan.Anime, error) {
	var entries []jikan.Anime
	for page := 1; page <= o.cfg.AnimePages; page++ {
		results, hasMore, err := o.anime.TopAnime(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetch top anime: %w", err)
		}
		entries = append(entries, results...)
		if !hasMore {
			break
		}
	}
	return entries, nil
}

// SyncGames fetches the popular and upcoming game listings, deduplicated by
// external ID.
func (o *Orchestrator) SyncGames(ctx context.Context) (Summary, error) {
	if !o.locks.TryLock(TypeGames) {
		o.logger.Info("Sync already running, skipping", zap.String("type", TypeGames))
		return Summary{}, nil
	}
	defer o.locks.Unlock(TypeGames)

	popular, err := o.games.PopularGames(ctx, o.cfg.GameLimit)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch popular games: %w", err)
	}
	upcoming, err := o.games.UpcomingGames(ctx, o.cfg.GameLimit)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch upcoming games: %w", err)
	}

	seen := make(map[int64]bool, len(popular)+len(upcoming))
	games := make([]igdb.Game, 0, len(popular)+len(upcoming))
	games = append(games, popular...)
	games = append(games, upcoming...)

	var summary Summary
	err = o.db.Transaction(func(tx *gorm.DB) error {
		for i := range games {
			g := &games[i]
			if seen[g.ID] {
				continue
			}
			seen[g.ID] = true
			outcome, err := reconcile.Game(tx, mapper.MapGame(g))
			if err != nil {
				return err
			}
			summary.count(outcome)
		}
		return nil
	})
	if err != nil {
		o.logger.Error("Game sync aborted", zap.Error(err))
		return Summary{}, err
	}

	o.logPass(TypeGames, summary)
	return summary, nil
}

// SyncAll runs every content type in sequence. A failing type logs and
// yields zero counts without stopping its siblings.
func (o *Orchestrator) SyncAll(ctx context.Context) map[string]Summary {
	passes := []struct {
		name string
		run  func(context.Context) (Summary, error)
	}{
		{TypeMovies, o.SyncMovies},
		{TypeSeries, o.SyncSeries},
		{TypeAnime, o.SyncAnime},
		{TypeGames, o.SyncGames},
	}

	out := make(map[string]Summary, len(passes))
	for _, p := range passes {
		summary, err := p.run(ctx)
		if err != nil {
			out[p.name] = Summary{}
			continue
		}
		out[p.name] = summary
	}
	return out
}

// Run dispatches a pass by content type key; "all" runs everything.
func (o *Orchestrator) Run(ctx context.Context, contentType string) error {
	switch contentType {
	case TypeMovies:
		_, err := o.SyncMovies(ctx)
		return err
	case TypeSeries:
		_, err := o.SyncSeries(ctx)
		return err
	case TypeAnime:
		_, err := o.SyncAnime(ctx)
		return err
	case TypeGames:
		_, err := o.SyncGames(ctx)
		return err
	case "all", "":
		o.SyncAll(ctx)
		return nil
	default:
		return fmt.Errorf("unknown content type %q", contentType)
	}
}

func (s *Summary) count(outcome reconcile.Outcome) {
	if outcome == reconcile.Created {
		s.Created++
	} else {
		s.Updated++
	}
}

func (o *Orchestrator) logPass(contentType string, s Summary) {
	o.logger.Info("Sync pass finished",
		zap.String("type", contentType),
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
	)
}
