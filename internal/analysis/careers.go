package analysis

import (
	"sort"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

// ArtistCareer spans an artist's songs in a collection.
type ArtistCareer struct {
	Artist    string `yaml:"artist"`
	Songs     int    `yaml:"songs"`
	FirstYear int    `yaml:"first_year"`
	LastYear  int    `yaml:"last_year"`
	Band      string `yaml:"band,omitempty"`
}

const (
	BandStar     = "Star"
	BandRegular  = "Regular"
	BandOccasion = "Occasional"

	ThresholdStar     = 10
	ThresholdRegular  = 5
	ThresholdOccasion = 2
)

func determineBand(songs int) string {
	switch {
	case songs >= ThresholdStar:
		return BandStar
	case songs >= ThresholdRegular:
		return BandRegular
	case songs >= ThresholdOccasion:
		return BandOccasion
	}
	return ""
}

// Careers returns the career span of every artist in tracks, in first-seen
// order.
func Careers(tracks []dataset.Track) []ArtistCareer {
	index := make(map[string]int)
	var out []ArtistCareer
	for _, t := range tracks {
		i, ok := index[t.Artist]
		if !ok {
			index[t.Artist] = len(out)
			out = append(out, ArtistCareer{Artist: t.Artist, Songs: 1, FirstYear: t.Year, LastYear: t.Year})
			continue
		}
		c := &out[i]
		c.Songs++
		if t.Year < c.FirstYear {
			c.FirstYear = t.Year
		}
		if t.Year > c.LastYear {
			c.LastYear = t.Year
		}
	}
	for i := range out {
		out[i].Band = determineBand(out[i].Songs)
	}
	return out
}

// FadedArtists returns artists with at least minSongs songs in all whose
// last song came out before year from, most recent first. Artists with the
// same last year are ordered by song count.
func FadedArtists(all []dataset.Track, from int, minSongs int) []ArtistCareer {
	var out []ArtistCareer
	for _, c := range Careers(all) {
		if c.LastYear < from && c.Songs >= minSongs {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastYear != out[j].LastYear {
			return out[i].LastYear > out[j].LastYear
		}
		return out[i].Songs > out[j].Songs
	})
	return out
}

// NewArtists ranks the artists of within whose first song in all came out
// in year from or later, by their number of songs in within.
func NewArtists(all []dataset.Track, within []dataset.Track, from int) Ranking[int] {
	first := make(map[string]int)
	for _, c := range Careers(all) {
		first[c.Artist] = c.FirstYear
	}

	t := newTally[int]()
	for _, track := range within {
		year, ok := first[track.Artist]
		if ok && year >= from {
			t.add(track.Artist, 1)
		}
	}
	return t.entries
}
