package sync_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"media-orbit/core/database"
	"media-orbit/core/source/igdb"
	"media-orbit/core/source/jikan"
	"media-orbit/core/source/tmdb"
	"media-orbit/feature/catalog/models"
	"media-orbit/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeTMDB struct {
	popular    []tmdb.Movie
	nowPlaying []tmdb.Movie
	upcoming   []tmdb.Movie
	detailErr  map[int64]error

	tv []tmdb.TVShow
}

func (f *fakeTMDB) PopularMovies(_ context.Context, page int) ([]tmdb.Movie, bool, error) {
	if page > 1 {
		return nil, false, nil
	}
	return f.popular, false, nil
}

func (f *fakeTMDB) NowPlayingMovies(_ context.Context, page int) ([]tmdb.Movie, bool, error) {
	if page > 1 {
		return nil, false, nil
	}
	return f.nowPlaying, false, nil
}

func (f *fakeTMDB) UpcomingMovies(_ context.Context, page int) ([]tmdb.Movie, bool, error) {
	if page > 1 {
		return nil, false, nil
	}
	return f.upcoming, false, nil
}

func (f *fakeTMDB) MovieDetails(_ context.Context, id int64) (*tmdb.MovieDetails, error) {
	if err := f.detailErr[id]; err != nil {
		return nil, err
	}
	return &tmdb.MovieDetails{
		Movie: tmdb.Movie{ID: id, Title: fmt.Sprintf("Movie %d", id)},
	}, nil
}

func (f *fakeTMDB) PopularTV(_ context.Context, page int) ([]tmdb.TVShow, bool, error) {
	if page > 1 {
		return nil, false, nil
	}
	return f.tv, false, nil
}

func (f *fakeTMDB) TVDetails(_ context.Context, id int64) (*tmdb.TVDetails, error) {
	return &tmdb.TVDetails{TVShow: tmdb.TVShow{ID: id, Name: fmt.Sprintf("Show %d", id)}}, nil
}

func (f *fakeTMDB) ImageBaseURL() string { return "https://img" }

type fakeJikan struct {
	top []jikan.Anime
	err error
}

func (f *fakeJikan) TopAnime(_ context.Context, page int) ([]jikan.Anime, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if page > 1 {
		return nil, false, nil
	}
	return f.top, false, nil
}

func (f *fakeJikan) AnimeCharacters(_ context.Context, _ int64) ([]jikan.CharacterEntry, error) {
	return nil, nil
}

func (f *fakeJikan) AnimeStaff(_ context.Context, _ int64) ([]jikan.StaffEntry, error) {
	return nil, nil
}

type fakeIGDB struct {
	popular  []igdb.Game
	upcoming []igdb.Game
}

func (f *fakeIGDB) PopularGames(_ context.Context, _ int) ([]igdb.Game, error) {
	return f.popular, nil
}

func (f *fakeIGDB) UpcomingGames(_ context.Context, _ int) ([]igdb.Game, error) {
	return f.upcoming, nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func testConfig() sync.Config {
	return sync.Config{MoviePages: 3, SeriesPages: 3, AnimePages: 2, GameLimit: 50}
}

func newOrchestrator(t *testing.T, db *gorm.DB, tm *fakeTMDB, jk *fakeJikan, ig *fakeIGDB) *sync.Orchestrator {
	t.Helper()
	if tm == nil {
		tm = &fakeTMDB{}
	}
	if jk == nil {
		jk = &fakeJikan{}
	}
	if ig == nil {
		ig = &fakeIGDB{}
	}
	return sync.NewOrchestrator(db, zap.NewNop(), testConfig(), tm, tm, jk, ig)
}

func TestSyncMoviesCreatesAndUpdates(t *testing.T) {
	db := testDB(t)

	// Seed one movie that already exists.
	require.NoError(t, db.Create(&models.Movie{ExternalID: 3, APITitle: "Old", CuratedTitle: "Old"}).Error)

	tm := &fakeTMDB{popular: []tmdb.Movie{{ID: 1}, {ID: 2}, {ID: 3}}}
	orch := newOrchestrator(t, db, tm, nil, nil)

	summary, err := orch.SyncMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Updated)
}

func TestSyncMoviesMergesListingFlags(t *testing.T) {
	db := testDB(t)

	tm := &fakeTMDB{
		popular:    []tmdb.Movie{{ID: 10}},
		nowPlaying: []tmdb.Movie{{ID: 10}},
		upcoming:   []tmdb.Movie{{ID: 10}, {ID: 20}},
	}
	orch := newOrchestrator(t, db, tm, nil, nil)

	summary, err := orch.SyncMovies(context.Background())
	require.NoError(t, err)
	// Movie 10 appears in three listings but yields a single row.
	assert.Equal(t, 2, summary.Created)

	var merged models.Movie
	require.NoError(t, db.Where("external_id = ?", 10).First(&merged).Error)
	assert.True(t, merged.NowShowing)
	assert.True(t, merged.Upcoming)

	var upcomingOnly models.Movie
	require.NoError(t, db.Where("external_id = ?", 20).First(&upcomingOnly).Error)
	assert.False(t, upcomingOnly.NowShowing)
	assert.True(t, upcomingOnly.Upcoming)
}

func TestSyncMoviesSkipsFailedDetails(t *testing.T) {
	db := testDB(t)

	tm := &fakeTMDB{
		popular:   []tmdb.Movie{{ID: 1}, {ID: 2}},
		detailErr: map[int64]error{1: errors.New("upstream 500")},
	}
	orch := newOrchestrator(t, db, tm, nil, nil)

	summary, err := orch.SyncMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)

	var count int64
	require.NoError(t, db.Model(&models.Movie{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSyncGamesDeduplicatesListings(t *testing.T) {
	db := testDB(t)

	ig := &fakeIGDB{
		popular:  []igdb.Game{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		upcoming: []igdb.Game{{ID: 2, Name: "B"}, {ID: 3, Name: "C"}},
	}
	orch := newOrchestrator(t, db, nil, nil, ig)

	summary, err := orch.SyncGames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Created)
	assert.Zero(t, summary.Updated)
}

func TestSyncAllIsolatesFailures(t *testing.T) {
	db := testDB(t)

	tm := &fakeTMDB{popular: []tmdb.Movie{{ID: 1}}, tv: []tmdb.TVShow{{ID: 2}}}
	jk := &fakeJikan{err: errors.New("jikan down")}
	ig := &fakeIGDB{popular: []igdb.Game{{ID: 3, Name: "G"}}}
	orch := newOrchestrator(t, db, tm, jk, ig)

	out := orch.SyncAll(context.Background())

	assert.Equal(t, 1, out[sync.TypeMovies].Created)
	assert.Equal(t, 1, out[sync.TypeSeries].Created)
	assert.Equal(t, sync.Summary{}, out[sync.TypeAnime])
	assert.Equal(t, 1, out[sync.TypeGames].Created)
}

func TestSyncAnimePersistsDubStatus(t *testing.T) {
	db := testDB(t)

	jk := &fakeJikan{top: []jikan.Anime{{MALID: 1, Title: "Bebop"}}}
	orch := newOrchestrator(t, db, nil, jk, nil)

	summary, err := orch.SyncAnime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)

	var a models.Anime
	require.NoError(t, db.Where("external_id = ?", 1).First(&a).Error)
	assert.Equal(t, models.DubStatusSubtitled, a.DubStatus)
}
