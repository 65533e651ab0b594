package mapper

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"media-orbit/core/source/igdb"
	"media-orbit/core/source/jikan"
	"media-orbit/core/source/tmdb"
	"media-orbit/feature/catalog/models"

	"gorm.io/datatypes"
)

// IGDB website category codes for digital storefronts.
const (
	websiteSteam = 13
	websiteEpic  = 16
	websiteGOG   = 17
)

// MapMovie builds a catalog movie from a TMDB listing entry and its detail
// payload. The listing flags record which listings the movie appeared in.
func MapMovie(details *tmdb.MovieDetails, imageBase string, nowShowing, upcoming bool) models.Movie {
	m := models.Movie{
		ExternalID:     details.ID,
		APITitle:       details.Title,
		Synopsis:       details.Overview,
		APIPosterURL:   imageURL(imageBase, details.PosterPath),
		APIReleaseDate: optional(details.ReleaseDate),
		Rating:         clampRating(details.VoteAverage),
		Genres:         jsonStrings(names(details.Genres)),
		NowShowing:     nowShowing,
		Upcoming:       upcoming,
	}
	if details.Runtime > 0 {
		m.DurationText = optional(fmt.Sprintf("%d min", details.Runtime))
	}
	m.Director = crewMember(details.Credits.Crew, "Director")
	m.Writer = crewMember(details.Credits.Crew, "Writer", "Screenplay")
	return m
}

// MapSeries builds a catalog series from a TMDB TV detail payload.
func MapSeries(details *tmdb.TVDetails, imageBase string) models.Series {
	return models.Series{
		ExternalID:     details.ID,
		APITitle:       details.Name,
		Synopsis:       details.Overview,
		APIPosterURL:   imageURL(imageBase, details.PosterPath),
		APIReleaseDate: optional(details.FirstAirDate),
		Rating:         clampRating(details.VoteAverage),
		Genres:         jsonStrings(names(details.Genres)),
		Creators:       jsonStrings(names(details.CreatedBy)),
		SeasonCount:    details.NumberOfSeasons,
		EpisodeCount:   details.NumberOfEpisodes,
		Status:         details.Status,
	}
}

// MapAnime builds a catalog anime from a Jikan payload plus its character
// and staff listings.
func MapAnime(a *jikan.Anime, chars []jikan.CharacterEntry, staff []jikan.StaffEntry) models.Anime {
	tags := namedList(a.Themes)
	tags = append(tags, namedList(a.Demographics)...)
	tags = append(tags, namedList(a.Genres)...)

	out := models.Anime{
		ExternalID:     a.MALID,
		APITitle:       firstNonEmpty(a.Title, a.TitleEnglish, a.TitleJapanese),
		Synopsis:       a.Synopsis,
		APIPosterURL:   optional(a.Images.JPG.ImageURL),
		APIReleaseDate: composeDate(a.Aired.Prop.From),
		Rating:         clampRating(a.Score),
		Genres:         jsonStrings(namedList(a.Genres)),
		Tags:           jsonStrings(tags),
		Staff:          staffJSON(staff),
		Characters:     charactersJSON(chars),
		SourceMaterial: a.Source,
		Studio:         strings.Join(namedList(a.Studios), ", "),
		DubStatus:      dubStatus(chars),
		EpisodeCount:   a.Episodes,
		ExternalLink:   optional(a.URL),
		TrailerID:      optional(a.Trailer.YoutubeID),
	}
	if a.Broadcast.String != "" {
		out.NextEpisodeMarker = optional(a.Broadcast.String)
	}
	return out
}

// MapGame builds a catalog game from an IGDB record.
func MapGame(g *igdb.Game) models.Game {
	developers := make([]string, 0)
	publishers := make([]string, 0)
	for _, ic := range g.InvolvedCompanies {
		if ic.Developer {
			developers = append(developers, ic.Company.Name)
		}
		if ic.Publisher {
			publishers = append(publishers, ic.Company.Name)
		}
	}

	return models.Game{
		ExternalID:         g.ID,
		APITitle:           g.Name,
		Synopsis:           g.Summary,
		APIPosterURL:       coverURL(g.Cover.URL),
		APIReleaseDate:     epochDate(g.FirstReleaseDate),
		Rating:             scaleRating100(g.Rating),
		Genres:             jsonStrings(igdbNames(g.Genres)),
		Platforms:          jsonStrings(igdbNames(g.Platforms)),
		Developers:         jsonStrings(developers),
		Publishers:         jsonStrings(publishers),
		DigitalStorefronts: storefrontsJSON(g.Websites),
	}
}

// firstNonEmpty returns the first non-empty candidate, or "".
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// composeDate builds a YYYY-MM-DD string from decomposed date parts.
// A missing month or day defaults to 1; no year means no date.
func composeDate(p jikan.DateParts) *string {
	if p.Year == 0 {
		return nil
	}
	month := p.Month
	if month == 0 {
		month = 1
	}
	day := p.Day
	if day == 0 {
		day = 1
	}
	return optional(fmt.Sprintf("%04d-%02d-%02d", p.Year, month, day))
}

// epochDate converts a unix timestamp to a YYYY-MM-DD string in UTC.
func epochDate(ts int64) *string {
	if ts == 0 {
		return nil
	}
	return optional(time.Unix(ts, 0).UTC().Format("2006-01-02"))
}

// scaleRating100 converts a 0-100 rating to the 0-10 scale.
func scaleRating100(r float64) float64 {
	return clampRating(r / 10)
}

// clampRating bounds a rating to [0, 10].
func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 10 {
		return 10
	}
	return r
}

// imageURL joins a poster path onto the image base. Empty path means no
// image.
func imageURL(base, path string) *string {
	if path == "" {
		return nil
	}
	return optional(base + path)
}

// coverURL upgrades an IGDB thumbnail URL to the big cover variant.
func coverURL(raw string) *string {
	if raw == "" {
		return nil
	}
	u := strings.Replace(raw, "t_thumb", "t_cover_big", 1)
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	return optional(u)
}

func dubStatus(chars []jikan.CharacterEntry) string {
	for _, entry := range chars {
		for _, va := range entry.VoiceActors {
			if va.Language == "Portuguese (BR)" {
				return models.DubStatusDubbed
			}
		}
	}
	return models.DubStatusSubtitled
}

type voiceActor struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// charactersJSON flattens character entries into a JSON list where each
// character carries a voice-actor map keyed by locale.
func charactersJSON(chars []jikan.CharacterEntry) datatypes.JSON {
	type character struct {
		ID          int64                 `json:"id"`
		Name        string                `json:"name"`
		PhotoURL    string                `json:"photo_url,omitempty"`
		VoiceActors map[string]voiceActor `json:"voice_actors,omitempty"`
	}
	out := make([]character, 0, len(chars))
	for _, entry := range chars {
		c := character{
			ID:       entry.Character.MALID,
			Name:     entry.Character.Name,
			PhotoURL: entry.Character.Images.JPG.ImageURL,
		}
		for _, va := range entry.VoiceActors {
			var locale string
			switch va.Language {
			case "Japanese":
				locale = "jp"
			case "Portuguese (BR)":
				locale = "pt_br"
			default:
				continue
			}
			if c.VoiceActors == nil {
				c.VoiceActors = make(map[string]voiceActor)
			}
			c.VoiceActors[locale] = voiceActor{
				Name:     va.Person.Name,
				PhotoURL: va.Person.Images.JPG.ImageURL,
			}
		}
		out = append(out, c)
	}
	return mustJSON(out)
}

func staffJSON(staff []jikan.StaffEntry) datatypes.JSON {
	type member struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Role     string `json:"role"`
		PhotoURL string `json:"photo_url,omitempty"`
	}
	out := make([]member, 0, len(staff))
	for _, s := range staff {
		out = append(out, member{
			ID:       s.Person.MALID,
			Name:     s.Person.Name,
			Role:     strings.Join(s.Positions, ", "),
			PhotoURL: s.Person.Images.JPG.ImageURL,
		})
	}
	return mustJSON(out)
}

func storefrontsJSON(sites []igdb.Website) datatypes.JSON {
	type storefront struct {
		Store string `json:"store"`
		URL   string `json:"url"`
	}
	out := make([]storefront, 0)
	for _, w := range sites {
		var store string
		switch w.Category {
		case websiteSteam:
			store = "steam"
		case websiteEpic:
			store = "epic"
		case websiteGOG:
			store = "gog"
		default:
			continue
		}
		out = append(out, storefront{Store: store, URL: w.URL})
	}
	return mustJSON(out)
}

func names(refs []tmdb.NamedRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func namedList(refs []jikan.Named) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func igdbNames(refs []igdb.Named) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func crewMember(crew []tmdb.CrewMember, jobs ...string) *string {
	for _, member := range crew {
		for _, job := range jobs {
			if member.Job == job {
				return optional(member.Name)
			}
		}
	}
	return nil
}

func jsonStrings(values []string) datatypes.JSON {
	return mustJSON(values)
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		// Only maps/slices of plain strings pass through here.
		panic(err)
	}
	return datatypes.JSON(raw)
}

func optional(s string) *string {
	return &s
}
