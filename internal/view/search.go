package view

import (
	"strings"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

// SearchResult is the outcome of a song search. Performed is false when the
// term was blank and no search ran, which is different from a search that
// matched nothing.
type SearchResult struct {
	Performed bool
	Term      string
	Tracks    []dataset.Track
}

// Empty reports a performed search with no matches.
func (r SearchResult) Empty() bool {
	return r.Performed && len(r.Tracks) == 0
}

// Search returns the tracks whose artist, song title or one of whose genres
// contains term, ignoring case. Results keep the input order.
func Search(tracks []dataset.Track, term string) SearchResult {
	if strings.TrimSpace(term) == "" {
		return SearchResult{Term: term}
	}

	needle := strings.ToLower(term)
	result := SearchResult{Performed: true, Term: term, Tracks: []dataset.Track{}}
	for _, t := range tracks {
		if matches(t, needle) {
			result.Tracks = append(result.Tracks, t)
		}
	}
	return result
}

func matches(t dataset.Track, needle string) bool {
	if strings.Contains(strings.ToLower(t.Artist), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Song), needle) {
		return true
	}
	for _, g := range t.Genres {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	return false
}

// ArtistSearchResult lists the artists matching a search term.
type ArtistSearchResult struct {
	Performed bool
	Term      string
	Artists   []string
}

func (r ArtistSearchResult) Empty() bool {
	return r.Performed && len(r.Artists) == 0
}

// SearchArtists returns the distinct artist names containing term, ignoring
// case, in the order they first appear.
func SearchArtists(tracks []dataset.Track, term string) ArtistSearchResult {
	if strings.TrimSpace(term) == "" {
		return ArtistSearchResult{Term: term}
	}

	needle := strings.ToLower(term)
	result := ArtistSearchResult{Performed: true, Term: term, Artists: []string{}}
	seen := make(map[string]bool)
	for _, t := range tracks {
		if seen[t.Artist] {
			continue
		}
		if strings.Contains(strings.ToLower(t.Artist), needle) {
			seen[t.Artist] = true
			result.Artists = append(result.Artists, t.Artist)
		}
	}
	return result
}

// ArtistTracks returns the tracks credited to exactly artist.
func ArtistTracks(tracks []dataset.Track, artist string) []dataset.Track {
	var out []dataset.Track
	for _, t := range tracks {
		if t.Artist == artist {
			out = append(out, t)
		}
	}
	return out
}
