package mapper_test

import (
	"encoding/json"
	"testing"

	"media-orbit/core/source/igdb"
	"media-orbit/core/source/jikan"
	"media-orbit/core/source/tmdb"
	"media-orbit/feature/catalog/models"
	"media-orbit/feature/sync/mapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMovie(t *testing.T) {
	details := &tmdb.MovieDetails{
		Movie: tmdb.Movie{
			ID:          550,
			Title:       "Clube da Luta",
			Overview:    "Um homem sem nome...",
			PosterPath:  "/poster.jpg",
			ReleaseDate: "1999-10-15",
			VoteAverage: 8.4,
		},
		Runtime: 139,
		Genres:  []tmdb.NamedRef{{Name: "Drama"}},
		Credits: tmdb.Credits{Crew: []tmdb.CrewMember{
			{Name: "David Fincher", Job: "Director"},
			{Name: "Jim Uhls", Job: "Screenplay"},
			{Name: "Someone Else", Job: "Producer"},
		}},
	}

	m := mapper.MapMovie(details, "https://image.tmdb.org/t/p/w500", true, false)

	assert.Equal(t, int64(550), m.ExternalID)
	assert.Equal(t, "Clube da Luta", m.APITitle)
	require.NotNil(t, m.APIPosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", *m.APIPosterURL)
	require.NotNil(t, m.DurationText)
	assert.Equal(t, "139 min", *m.DurationText)
	require.NotNil(t, m.Director)
	assert.Equal(t, "David Fincher", *m.Director)
	require.NotNil(t, m.Writer)
	assert.Equal(t, "Jim Uhls", *m.Writer)
	assert.True(t, m.NowShowing)
	assert.False(t, m.Upcoming)

	var genres []string
	require.NoError(t, json.Unmarshal(m.Genres, &genres))
	assert.Equal(t, []string{"Drama"}, genres)
}

func TestMapMovieMissingPoster(t *testing.T) {
	details := &tmdb.MovieDetails{Movie: tmdb.Movie{ID: 1, Title: "X"}}
	m := mapper.MapMovie(details, "https://img", false, false)
	assert.Nil(t, m.APIPosterURL)
	assert.Nil(t, m.DurationText)
	assert.Nil(t, m.Director)
	assert.Zero(t, m.Rating)
}

func TestMapSeries(t *testing.T) {
	details := &tmdb.TVDetails{
		TVShow: tmdb.TVShow{
			ID:           1399,
			Name:         "Game of Thrones",
			FirstAirDate: "2011-04-17",
			VoteAverage:  8.5,
		},
		NumberOfSeasons:  8,
		NumberOfEpisodes: 73,
		CreatedBy:        []tmdb.NamedRef{{Name: "David Benioff"}, {Name: "D. B. Weiss"}},
		Status:           "Ended",
	}

	s := mapper.MapSeries(details, "https://img")

	assert.Equal(t, int64(1399), s.ExternalID)
	assert.Equal(t, 8, s.SeasonCount)
	assert.Equal(t, 73, s.EpisodeCount)
	assert.Equal(t, "Ended", s.Status)

	var creators []string
	require.NoError(t, json.Unmarshal(s.Creators, &creators))
	assert.Len(t, creators, 2)
}

func TestMapAnimeTitleFallback(t *testing.T) {
	a := &jikan.Anime{MALID: 1, TitleEnglish: "Cowboy Bebop EN"}
	out := mapper.MapAnime(a, nil, nil)
	assert.Equal(t, "Cowboy Bebop EN", out.APITitle)

	a = &jikan.Anime{MALID: 1, Title: "Cowboy Bebop", TitleEnglish: "Cowboy Bebop EN"}
	out = mapper.MapAnime(a, nil, nil)
	assert.Equal(t, "Cowboy Bebop", out.APITitle)

	a = &jikan.Anime{MALID: 1, TitleJapanese: "カウボーイビバップ"}
	out = mapper.MapAnime(a, nil, nil)
	assert.Equal(t, "カウボーイビバップ", out.APITitle)

	a = &jikan.Anime{MALID: 1}
	out = mapper.MapAnime(a, nil, nil)
	assert.Equal(t, "", out.APITitle)
}

func TestMapAnimeDubStatus(t *testing.T) {
	chars := []jikan.CharacterEntry{{
		Character: jikan.Person{Name: "Spike"},
		VoiceActors: []jikan.VoiceActor{
			{Person: jikan.Person{Name: "Koichi Yamadera"}, Language: "Japanese"},
			{Person: jikan.Person{Name: "Guilherme Briggs"}, Language: "Portuguese (BR)"},
		},
	}}

	out := mapper.MapAnime(&jikan.Anime{MALID: 1, Title: "Bebop"}, chars, nil)
	assert.Equal(t, models.DubStatusDubbed, out.DubStatus)

	var decoded []struct {
		Name        string `json:"name"`
		VoiceActors map[string]struct {
			Name string `json:"name"`
		} `json:"voice_actors"`
	}
	require.NoError(t, json.Unmarshal(out.Characters, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Koichi Yamadera", decoded[0].VoiceActors["jp"].Name)
	assert.Equal(t, "Guilherme Briggs", decoded[0].VoiceActors["pt_br"].Name)
}

func TestMapAnimeSubtitledWithoutPTBR(t *testing.T) {
	chars := []jikan.CharacterEntry{{
		Character: jikan.Person{Name: "Spike"},
		VoiceActors: []jikan.VoiceActor{
			{Person: jikan.Person{Name: "Koichi Yamadera"}, Language: "Japanese"},
		},
	}}

	out := mapper.MapAnime(&jikan.Anime{MALID: 1, Title: "Bebop"}, chars, nil)
	assert.Equal(t, models.DubStatusSubtitled, out.DubStatus)
}

func TestMapAnimeDateComposition(t *testing.T) {
	a := &jikan.Anime{MALID: 1, Title: "X"}
	a.Aired.Prop.From = jikan.DateParts{Year: 1998, Month: 4, Day: 3}
	out := mapper.MapAnime(a, nil, nil)
	require.NotNil(t, out.APIReleaseDate)
	assert.Equal(t, "1998-04-03", *out.APIReleaseDate)

	// Missing month and day default to 1.
	a.Aired.Prop.From = jikan.DateParts{Year: 1998}
	out = mapper.MapAnime(a, nil, nil)
	require.NotNil(t, out.APIReleaseDate)
	assert.Equal(t, "1998-01-01", *out.APIReleaseDate)

	// No year means no date.
	a.Aired.Prop.From = jikan.DateParts{Month: 4, Day: 3}
	out = mapper.MapAnime(a, nil, nil)
	assert.Nil(t, out.APIReleaseDate)
}

func TestMapAnimeTagsAndStudio(t *testing.T) {
	a := &jikan.Anime{
		MALID:        1,
		Title:        "X",
		Genres:       []jikan.Named{{Name: "Action"}},
		Themes:       []jikan.Named{{Name: "Space"}},
		Demographics: []jikan.Named{{Name: "Seinen"}},
		Studios:      []jikan.Named{{Name: "Sunrise"}, {Name: "Bones"}},
	}
	out := mapper.MapAnime(a, nil, nil)

	var tags []string
	require.NoError(t, json.Unmarshal(out.Tags, &tags))
	assert.ElementsMatch(t, []string{"Space", "Seinen", "Action"}, tags)
	assert.Equal(t, "Sunrise, Bones", out.Studio)
}

func TestMapGame(t *testing.T) {
	g := &igdb.Game{
		ID:               1942,
		Name:             "The Witcher 3",
		FirstReleaseDate: 1700000000,
		Rating:           93.4,
		InvolvedCompanies: []igdb.InvolvedCompany{
			{Company: igdb.Named{Name: "CD Projekt Red"}, Developer: true},
			{Company: igdb.Named{Name: "CD Projekt"}, Publisher: true},
		},
		Websites: []igdb.Website{
			{URL: "https://store.steampowered.com/app/292030", Category: 13},
			{URL: "https://www.gog.com/game/witcher3", Category: 17},
			{URL: "https://thewitcher.com", Category: 1},
		},
	}
	g.Cover.URL = "//images.igdb.com/igdb/image/upload/t_thumb/co1wyy.jpg"

	out := mapper.MapGame(g)

	assert.Equal(t, int64(1942), out.ExternalID)
	require.NotNil(t, out.APIReleaseDate)
	assert.Equal(t, "2023-11-14", *out.APIReleaseDate)
	assert.InDelta(t, 9.34, out.Rating, 0.001)
	require.NotNil(t, out.APIPosterURL)
	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1wyy.jpg", *out.APIPosterURL)

	var developers, publishers []string
	require.NoError(t, json.Unmarshal(out.Developers, &developers))
	require.NoError(t, json.Unmarshal(out.Publishers, &publishers))
	assert.Equal(t, []string{"CD Projekt Red"}, developers)
	assert.Equal(t, []string{"CD Projekt"}, publishers)

	var stores []struct {
		Store string `json:"store"`
		URL   string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(out.DigitalStorefronts, &stores))
	require.Len(t, stores, 2)
	assert.Equal(t, "steam", stores[0].Store)
	assert.Equal(t, "gog", stores[1].Store)
}

func TestMapGameRatingClamp(t *testing.T) {
	out := mapper.MapGame(&igdb.Game{ID: 1, Rating: 120})
	assert.Equal(t, 10.0, out.Rating)

	out = mapper.MapGame(&igdb.Game{ID: 1})
	assert.Zero(t, out.Rating)
	assert.Nil(t, out.APIReleaseDate)
}
