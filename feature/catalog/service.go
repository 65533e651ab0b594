package catalog

import (
	"errors"
	"fmt"
	"sort"

	"media-orbit/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a catalog entry does not exist.
var ErrNotFound = errors.New("not found")

// Page is the pagination envelope returned by the listing endpoints.
type Page[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	TotalPages   int   `json:"total_pages"`
	TotalResults int64 `json:"total_results"`
}

// SearchItem is one unified search or trending result.
type SearchItem struct {
	Type      string  `json:"type"`
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	PosterURL *string `json:"poster_url"`
	Rating    float64 `json:"rating"`
}

// Service reads the catalog tables.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates the catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ListMovies returns one page of movies, newest rating first.
func (s *Service) ListMovies(page, perPage int) (Page[models.Movie], error) {
	return listPage[models.Movie](s.db, page, perPage)
}

// ListSeries returns one page of series.
func (s *Service) ListSeries(page, perPage int) (Page[models.Series], error) {
	return listPage[models.Series](s.db, page, perPage)
}

// ListAnimes returns one page of anime entries.
func (s *Service) ListAnimes(page, perPage int) (Page[models.Anime], error) {
	return listPage[models.Anime](s.db, page, perPage)
}

// ListGames returns one page of games.
func (s *Service) ListGames(page, perPage int) (Page[models.Game], error) {
	return listPage[models.Game](s.db, page, perPage)
}

// GetMovie loads one movie by ID.
func (s *Service) GetMovie(id uint) (*models.Movie, error) {
	return getByID[models.Movie](s.db, id)
}

// GetSeries loads one series by ID.
func (s *Service) GetSeries(id uint) (*models.Series, error) {
	return getByID[models.Series](s.db, id)
}

// GetAnime loads one anime by ID.
func (s *Service) GetAnime(id uint) (*models.Anime, error) {
	return getByID[models.Anime](s.db, id)
}

// GetGame loads one game by ID.
func (s *Service) GetGame(id uint) (*models.Game, error) {
	return getByID[models.Game](s.db, id)
}

const searchLimit = 20

// Search matches the query against curated and API titles of every content
// type, returning a unified list tagged by type.
func (s *Service) Search(query string) ([]SearchItem, error) {
	pattern := "%" + query + "%"
	var out []SearchItem

	var movies []models.Movie
	if err := s.db.Where("curated_title LIKE ? OR api_title LIKE ?", pattern, pattern).
		Limit(searchLimit).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	for _, m := range movies {
		out = append(out, SearchItem{Type: "movie", ID: m.ID, Title: displayTitle(m.CuratedTitle, m.APITitle), PosterURL: m.CuratedPosterURL, Rating: m.Rating})
	}

	var series []models.Series
	if err := s.db.Where("curated_title LIKE ? OR api_title LIKE ?", pattern, pattern).
		Limit(searchLimit).Find(&series).Error; err != nil {
		return nil, fmt.Errorf("search series: %w", err)
	}
	for _, sr := range series {
		out = append(out, SearchItem{Type: "series", ID: sr.ID, Title: displayTitle(sr.CuratedTitle, sr.APITitle), PosterURL: sr.CuratedPosterURL, Rating: sr.Rating})
	}

	var animes []models.Anime
	if err := s.db.Where("curated_title LIKE ? OR api_title LIKE ?", pattern, pattern).
		Limit(searchLimit).Find(&animes).Error; err != nil {
		return nil, fmt.Errorf("search animes: %w", err)
	}
	for _, a := range animes {
		out = append(out, SearchItem{Type: "anime", ID: a.ID, Title: displayTitle(a.CuratedTitle, a.APITitle), PosterURL: a.CuratedPosterURL, Rating: a.Rating})
	}

	var games []models.Game
	if err := s.db.Where("curated_title LIKE ? OR api_title LIKE ?", pattern, pattern).
		Limit(searchLimit).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	for _, g := range games {
		out = append(out, SearchItem{Type: "game", ID: g.ID, Title: displayTitle(g.CuratedTitle, g.APITitle), PosterURL: g.CuratedPosterURL, Rating: g.Rating})
	}

	return out, nil
}

// Trending returns the highest-rated entries across every content type.
func (s *Service) Trending(limit int) ([]SearchItem, error) {
	if limit <= 0 || limit > searchLimit {
		limit = searchLimit
	}

	var out []SearchItem

	var movies []models.Movie
	if err := s.db.Order("rating DESC").Limit(limit).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("trending movies: %w", err)
	}
	for _, m := range movies {
		out = append(out, SearchItem{Type: "movie", ID: m.ID, Title: displayTitle(m.CuratedTitle, m.APITitle), PosterURL: m.CuratedPosterURL, Rating: m.Rating})
	}

	var series []models.Series
	if err := s.db.Order("rating DESC").Limit(limit).Find(&series).Error; err != nil {
		return nil, fmt.Errorf("trending series: %w", err)
	}
	for _, sr := range series {
		out = append(out, SearchItem{Type: "series", ID: sr.ID, Title: displayTitle(sr.CuratedTitle, sr.APITitle), PosterURL: sr.CuratedPosterURL, Rating: sr.Rating})
	}

	var animes []models.Anime
	if err := s.db.Order("rating DESC").Limit(limit).Find(&animes).Error; err != nil {
		return nil, fmt.Errorf("trending animes: %w", err)
	}
	for _, a := range animes {
		out = append(out, SearchItem{Type: "anime", ID: a.ID, Title: displayTitle(a.CuratedTitle, a.APITitle), PosterURL: a.CuratedPosterURL, Rating: a.Rating})
	}

	var games []models.Game
	if err := s.db.Order("rating DESC").Limit(limit).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("trending games: %w", err)
	}
	for _, g := range games {
		out = append(out, SearchItem{Type: "game", ID: g.ID, Title: displayTitle(g.CuratedTitle, g.APITitle), PosterURL: g.CuratedPosterURL, Rating: g.Rating})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func listPage[T any](db *gorm.DB, page, perPage int) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	var model T
	var total int64
	if err := db.Model(&model).Count(&total).Error; err != nil {
		return Page[T]{}, fmt.Errorf("count: %w", err)
	}

	results := make([]T, 0, perPage)
	err := db.Order("rating DESC, id ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&results).Error
	if err != nil {
		return Page[T]{}, fmt.Errorf("list: %w", err)
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Page[T]{
		Results:      results,
		Page:         page,
		TotalPages:   totalPages,
		TotalResults: total,
	}, nil
}

func getByID[T any](db *gorm.DB, id uint) (*T, error) {
	var out T
	err := db.First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// displayTitle prefers the curated title over the raw API one.
func displayTitle(curated, api string) string {
	if curated != "" {
		return curated
	}
	return api
}
