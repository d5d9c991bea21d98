package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Track is one normalized song from the dataset. Tracks are built once by
// Load and never modified afterwards; filter and search results share them.
type Track struct {
	Artist string `yaml:"artist"`
	Song   string `yaml:"song"`

	// In source order, trimmed, never empty.
	Genres []string `yaml:"genres"`

	Year            int     `yaml:"year"`
	Popularity      float64 `yaml:"popularity"`
	DurationMS      int64   `yaml:"duration_ms"`
	DurationMinutes float64 `yaml:"duration_minutes"`
	Explicit        bool    `yaml:"explicit"`

	Danceability     float64 `yaml:"danceability"`
	Energy           float64 `yaml:"energy"`
	Key              int     `yaml:"key"`
	Loudness         float64 `yaml:"loudness"`
	Mode             int     `yaml:"mode"`
	Speechiness      float64 `yaml:"speechiness"`
	Acousticness     float64 `yaml:"acousticness"`
	Instrumentalness float64 `yaml:"instrumentalness"`
	Liveness         float64 `yaml:"liveness"`
	Valence          float64 `yaml:"valence"`
	Tempo            float64 `yaml:"tempo"`
}

// GenreList joins the track's genres for display.
func (t Track) GenreList() string {
	return strings.Join(t.Genres, ", ")
}

// HasGenre reports whether any of the track's genres is in set.
func (t Track) HasGenre(set map[string]bool) bool {
	for _, g := range t.Genres {
		if set[g] {
			return true
		}
	}
	return false
}

// Field names a numeric attribute of a Track.
type Field string

const (
	FieldPopularity       Field = "popularity"
	FieldDuration         Field = "duration"
	FieldYear             Field = "year"
	FieldDanceability     Field = "danceability"
	FieldEnergy           Field = "energy"
	FieldKey              Field = "key"
	FieldLoudness         Field = "loudness"
	FieldMode             Field = "mode"
	FieldSpeechiness      Field = "speechiness"
	FieldAcousticness     Field = "acousticness"
	FieldInstrumentalness Field = "instrumentalness"
	FieldLiveness         Field = "liveness"
	FieldValence          Field = "valence"
	FieldTempo            Field = "tempo"
)

var fieldAccessors = map[Field]func(t *Track) float64{
	FieldPopularity:       func(t *Track) float64 { return t.Popularity },
	FieldDuration:         func(t *Track) float64 { return t.DurationMinutes },
	FieldYear:             func(t *Track) float64 { return float64(t.Year) },
	FieldDanceability:     func(t *Track) float64 { return t.Danceability },
	FieldEnergy:           func(t *Track) float64 { return t.Energy },
	FieldKey:              func(t *Track) float64 { return float64(t.Key) },
	FieldLoudness:         func(t *Track) float64 { return t.Loudness },
	FieldMode:             func(t *Track) float64 { return float64(t.Mode) },
	FieldSpeechiness:      func(t *Track) float64 { return t.Speechiness },
	FieldAcousticness:     func(t *Track) float64 { return t.Acousticness },
	FieldInstrumentalness: func(t *Track) float64 { return t.Instrumentalness },
	FieldLiveness:         func(t *Track) float64 { return t.Liveness },
	FieldValence:          func(t *Track) float64 { return t.Valence },
	FieldTempo:            func(t *Track) float64 { return t.Tempo },
}

// ParseField validates a field name, accepting "duration_minutes" as an
// alias for the derived duration column.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "duration_minutes" {
		name = string(FieldDuration)
	}
	f := Field(name)
	if _, ok := fieldAccessors[f]; !ok {
		return "", fmt.Errorf("unknown field %q (want one of %s)", name, strings.Join(FieldNames(), ", "))
	}
	return f, nil
}

// FieldNames lists the valid field names in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fieldAccessors))
	for f := range fieldAccessors {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Value returns the value of field f for the track. Unknown fields yield 0;
// callers are expected to go through ParseField first.
func (t *Track) Value(f Field) float64 {
	get, ok := fieldAccessors[f]
	if !ok {
		return 0
	}
	return get(t)
}

// GenreRow is one row of the exploded view: a track paired with a single
// one of its genres.
type GenreRow struct {
	Genre string
	*Track
}

// Explode fans each track out into one row per genre, in track order and
// then genre order.
func Explode(tracks []Track) []GenreRow {
	n := 0
	for i := range tracks {
		n += len(tracks[i].Genres)
	}
	rows := make([]GenreRow, 0, n)
	for i := range tracks {
		for _, g := range tracks[i].Genres {
			rows = append(rows, GenreRow{Genre: g, Track: &tracks[i]})
		}
	}
	return rows
}
