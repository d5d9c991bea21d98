package view

import (
	"fmt"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

// YearRange is an inclusive range of release years.
type YearRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

func (r YearRange) String() string {
	if r.From == r.To {
		return fmt.Sprintf("%d", r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// YearBounds returns the smallest range covering every track. ok is false
// for an empty collection.
func YearBounds(tracks []dataset.Track) (r YearRange, ok bool) {
	for i, t := range tracks {
		if i == 0 || t.Year < r.From {
			r.From = t.Year
		}
		if i == 0 || t.Year > r.To {
			r.To = t.Year
		}
	}
	return r, len(tracks) > 0
}

// GenreSet is a selection of genre labels.
type GenreSet map[string]bool

// NewGenreSet builds a set from labels.
func NewGenreSet(genres ...string) GenreSet {
	set := make(GenreSet, len(genres))
	for _, g := range genres {
		set[g] = true
	}
	return set
}

// AllGenres returns the distinct genres of tracks in first-seen order.
func AllGenres(tracks []dataset.Track) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, t := range tracks {
		for _, g := range t.Genres {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	return genres
}

// Filter returns the tracks released within years that carry at least one
// genre from genres. The input is never modified; an empty result is not an
// error.
func Filter(tracks []dataset.Track, years YearRange, genres GenreSet) []dataset.Track {
	filtered := make([]dataset.Track, 0, len(tracks))
	for _, t := range tracks {
		if !years.Contains(t.Year) {
			continue
		}
		if !t.HasGenre(genres) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// FilterYears applies only the year predicate.
func FilterYears(tracks []dataset.Track, years YearRange) []dataset.Track {
	filtered := make([]dataset.Track, 0, len(tracks))
	for _, t := range tracks {
		if years.Contains(t.Year) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
