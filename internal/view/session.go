package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/logger"
	"github.com/google/uuid"
)

// GenreScope decides which tracks "all genres" is computed from.
type GenreScope string

const (
	// ScopeDataset takes every genre in the loaded dataset.
	ScopeDataset GenreScope = "dataset"
	// ScopeYears takes only genres present within the selected years.
	ScopeYears GenreScope = "years"
)

func ParseGenreScope(s string) (GenreScope, error) {
	switch GenreScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeDataset:
		return ScopeDataset, nil
	case ScopeYears:
		return ScopeYears, nil
	}
	return "", fmt.Errorf("invalid genre scope %q (want %q or %q)", s, ScopeDataset, ScopeYears)
}

// Session holds one user's filter selection over a shared, read-only
// dataset. Every derived view is recomputed from the base collection on
// request. A Session is not safe for concurrent use.
type Session struct {
	ID string

	base   []dataset.Track
	years  YearRange
	genres GenreSet // nil selects all genres
	scope  GenreScope
}

// NewSession starts a session selecting every year and genre of base.
func NewSession(base []dataset.Track, scope GenreScope) *Session {
	years, _ := YearBounds(base)
	s := &Session{
		ID:    uuid.NewString(),
		base:  base,
		years: years,
		scope: scope,
	}
	logger.Debug("session started",
		logger.String("session", s.ID),
		logger.Int("tracks", len(base)),
		logger.String("years", years.String()),
		logger.String("genre_scope", string(scope)))
	return s
}

// Base returns the unfiltered collection.
func (s *Session) Base() []dataset.Track {
	return s.base
}

// Bounds is the year range of the whole dataset.
func (s *Session) Bounds() YearRange {
	r, _ := YearBounds(s.base)
	return r
}

func (s *Session) Years() YearRange {
	return s.years
}

// SetYears changes the selected year range.
func (s *Session) SetYears(r YearRange) error {
	if r.From > r.To {
		return fmt.Errorf("invalid year range: %d is after %d", r.From, r.To)
	}
	s.years = r
	logger.Debug("years selected", logger.String("session", s.ID), logger.String("years", r.String()))
	return nil
}

func (s *Session) Scope() GenreScope {
	return s.scope
}

func (s *Session) SetScope(scope GenreScope) {
	s.scope = scope
}

// AllGenresSelected reports whether the genre filter is "all genres".
func (s *Session) AllGenresSelected() bool {
	return s.genres == nil
}

// SelectAllGenres clears any explicit genre selection.
func (s *Session) SelectAllGenres() {
	s.genres = nil
	logger.Debug("all genres selected", logger.String("session", s.ID))
}

// SelectGenres selects exactly the given genres. Selecting none leaves an
// empty selection, so the filtered view is empty too.
func (s *Session) SelectGenres(genres ...string) {
	s.genres = NewGenreSet(genres...)
	logger.Debug("genres selected", logger.String("session", s.ID), logger.Strings("genres", genres))
}

// GenreOptions returns the genres that can be selected: every genre in the
// dataset, or only those released within the selected years, depending on
// the scope.
func (s *Session) GenreOptions() []string {
	if s.scope == ScopeYears {
		return AllGenres(FilterYears(s.base, s.years))
	}
	return AllGenres(s.base)
}

// SelectedGenres returns the effective genre selection, resolving "all
// genres" against the current options.
func (s *Session) SelectedGenres() GenreSet {
	if s.genres == nil {
		return NewGenreSet(s.GenreOptions()...)
	}
	return s.genres
}

// SelectedGenreList returns the explicit selection sorted, or nil when all
// genres are selected.
func (s *Session) SelectedGenreList() []string {
	if s.genres == nil {
		return nil
	}
	list := make([]string, 0, len(s.genres))
	for g := range s.genres {
		list = append(list, g)
	}
	sort.Strings(list)
	return list
}

// View returns the filtered tracks for the current selection.
func (s *Session) View() []dataset.Track {
	filtered := Filter(s.base, s.years, s.SelectedGenres())
	if len(filtered) == 0 {
		logger.Debug("filter matched no tracks", logger.String("session", s.ID), logger.String("years", s.years.String()))
	}
	return filtered
}

// Search runs a song search over the filtered view.
func (s *Session) Search(term string) SearchResult {
	return Search(s.View(), term)
}

// SearchArtists runs an artist search over the filtered view.
func (s *Session) SearchArtists(term string) ArtistSearchResult {
	return SearchArtists(s.View(), term)
}
