package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/hits-dashboard/internal/view"
)

func TestParseGenreScope(t *testing.T) {
	scope, err := view.ParseGenreScope("")
	require.NoError(t, err)
	assert.Equal(t, view.ScopeDataset, scope)

	scope, err = view.ParseGenreScope(" Years ")
	require.NoError(t, err)
	assert.Equal(t, view.ScopeYears, scope)

	_, err = view.ParseGenreScope("decade")
	assert.Error(t, err)
}

func TestNewSessionSelectsEverything(t *testing.T) {
	s := view.NewSession(testTracks(), view.ScopeDataset)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, view.YearRange{From: 1999, To: 2005}, s.Years())
	assert.True(t, s.AllGenresSelected())
	assert.Nil(t, s.SelectedGenreList())
	assert.Len(t, s.View(), len(testTracks()))
}

func TestSessionsAreIndependent(t *testing.T) {
	base := testTracks()
	a := view.NewSession(base, view.ScopeDataset)
	b := view.NewSession(base, view.ScopeDataset)
	assert.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.SetYears(view.YearRange{From: 2005, To: 2005}))
	assert.Len(t, a.View(), 1)
	assert.Len(t, b.View(), len(base))
}

func TestSessionSetYearsRejectsBackwards(t *testing.T) {
	s := view.NewSession(testTracks(), view.ScopeDataset)
	assert.Error(t, s.SetYears(view.YearRange{From: 2005, To: 1999}))
	assert.Equal(t, view.YearRange{From: 1999, To: 2005}, s.Years())
}

func TestSessionGenreSelection(t *testing.T) {
	s := view.NewSession(testTracks(), view.ScopeDataset)

	s.SelectGenres("metal", "country")
	assert.False(t, s.AllGenresSelected())
	assert.Equal(t, []string{"country", "metal"}, s.SelectedGenreList())
	assert.Equal(t, []string{"Breathe", "It's My Life"}, songs(s.View()))

	s.SelectGenres()
	assert.Empty(t, s.View())

	s.SelectAllGenres()
	assert.Len(t, s.View(), len(testTracks()))
}

func TestSessionGenreScope(t *testing.T) {
	s := view.NewSession(testTracks(), view.ScopeDataset)
	require.NoError(t, s.SetYears(view.YearRange{From: 2000, To: 2000}))

	// Dataset scope offers every genre regardless of the years.
	assert.Equal(t, []string{"pop", "rock", "country", "metal", "hip hop"}, s.GenreOptions())

	s.SetScope(view.ScopeYears)
	assert.Equal(t, view.ScopeYears, s.Scope())
	assert.Equal(t, []string{"rock", "metal", "hip hop"}, s.GenreOptions())

	// Either way "all genres" keeps every track within the years.
	assert.Equal(t, []string{"It's My Life", "Stan"}, songs(s.View()))
}

func TestSessionSearch(t *testing.T) {
	s := view.NewSession(testTracks(), view.ScopeDataset)
	s.SelectGenres("pop")

	result := s.Search("the")
	assert.True(t, result.Performed)
	assert.Equal(t, []string{"All The Small Things"}, songs(result.Tracks))

	// Breathe is outside the selected genres.
	assert.True(t, s.Search("breathe").Empty())

	assert.Equal(t, []string{"Gorillaz"}, s.SearchArtists("gor").Artists)
}

func TestSessionBaseUnchanged(t *testing.T) {
	base := testTracks()
	s := view.NewSession(base, view.ScopeDataset)
	require.NoError(t, s.SetYears(view.YearRange{From: 2003, To: 2003}))
	s.SelectGenres("pop")
	s.View()

	assert.Equal(t, songs(testTracks()), songs(s.Base()))
	assert.Equal(t, view.YearRange{From: 1999, To: 2005}, s.Bounds())
}
