package dataset_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

const fixture = "testdata/songs.csv"

func loadFixture(t *testing.T) []dataset.Track {
	t.Helper()
	tracks, err := dataset.Load(dataset.NewCSVFile(fixture))
	require.NoError(t, err)
	return tracks
}

func record(artist, song, genre string, popularity float64) dataset.RawRecord {
	return dataset.RawRecord{
		Track: dataset.Track{Artist: artist, Song: song, Popularity: popularity, DurationMS: 180000},
		Genre: genre,
	}
}

func TestLoadFixture(t *testing.T) {
	tracks, stats, err := dataset.LoadWithStats(dataset.NewCSVFile(fixture))
	require.NoError(t, err)

	assert.Equal(t, dataset.NormalizeStats{Raw: 9, Duplicates: 1, NoGenre: 1}, stats)
	require.Len(t, tracks, 7)

	var songs []string
	for _, tr := range tracks {
		songs = append(songs, tr.Song)
	}
	assert.Equal(t, []string{
		"Oops!...I Did It Again",
		"All The Small Things",
		"Breathe",
		"It's My Life",
		"The Real Slim Shady",
		"Stan",
		"Feel Good Inc.",
	}, songs)

	britney := tracks[0]
	assert.Equal(t, 80.0, britney.Popularity)
	assert.Equal(t, 2000, britney.Year)
	assert.False(t, britney.Explicit)
	assert.Equal(t, []string{"pop"}, britney.Genres)
	assert.InDelta(t, 0.751, britney.Danceability, 1e-9)

	assert.Equal(t, []string{"rock", "pop"}, tracks[1].Genres)
	assert.Equal(t, []string{"rock", "metal"}, tracks[3].Genres)
	assert.True(t, tracks[4].Explicit)
	assert.Equal(t, []string{"hip hop", "pop", "rock"}, tracks[6].Genres)
}

func TestNormalizeDedupKeepsMostPopular(t *testing.T) {
	tracks, stats := dataset.Normalize([]dataset.RawRecord{
		record("A", "x", "pop", 10),
		record("B", "y", "rock", 5),
		record("A", "x", "pop", 30),
		record("A", "x", "pop", 20),
	})

	require.Len(t, tracks, 2)
	assert.Equal(t, 2, stats.Duplicates)
	assert.Equal(t, "A", tracks[0].Artist)
	assert.Equal(t, 30.0, tracks[0].Popularity)
	assert.Equal(t, "B", tracks[1].Artist)
}

func TestNormalizeDedupTieKeepsFirst(t *testing.T) {
	first := record("A", "x", "pop", 10)
	first.Year = 1999
	second := record("A", "x", "pop", 10)
	second.Year = 2001

	tracks, _ := dataset.Normalize([]dataset.RawRecord{first, second})
	require.Len(t, tracks, 1)
	assert.Equal(t, 1999, tracks[0].Year)
}

func TestNormalizeUniquePairs(t *testing.T) {
	tracks := loadFixture(t)
	seen := make(map[[2]string]bool)
	for _, tr := range tracks {
		k := [2]string{tr.Artist, tr.Song}
		assert.False(t, seen[k], "duplicate pair %v", k)
		seen[k] = true
	}
}

func TestNormalizeDropsMissingGenre(t *testing.T) {
	tracks, stats := dataset.Normalize([]dataset.RawRecord{
		record("A", "x", "set()", 10),
		record("B", "y", " , ;", 10),
		record("C", "z", "pop", 10),
	})
	require.Len(t, tracks, 1)
	assert.Equal(t, "C", tracks[0].Artist)
	assert.Equal(t, 2, stats.NoGenre)
	for _, tr := range tracks {
		assert.NotEmpty(t, tr.Genres)
	}
}

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"pop", []string{"pop"}},
		{"rock, pop", []string{"rock", "pop"}},
		{"rock;pop", []string{"rock", "pop"}},
		{" hip hop ,pop; R&B ", []string{"hip hop", "pop", "R&B"}},
		{"pop,,rock", []string{"pop", "rock"}},
		{"", []string{}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, dataset.SplitGenres(tc.in), "SplitGenres(%q)", tc.in)
	}
}

func TestDurationMinutes(t *testing.T) {
	for _, tr := range loadFixture(t) {
		assert.InDelta(t, float64(tr.DurationMS), tr.DurationMinutes*60000, 1e-6)
	}
	tracks, _ := dataset.Normalize([]dataset.RawRecord{record("A", "x", "pop", 1)})
	assert.Equal(t, 3.0, tracks[0].DurationMinutes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dataset.Load(dataset.NewCSVFile(filepath.Join(t.TempDir(), "nope.csv")))
	var dsErr *dataset.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMissingColumn(t *testing.T) {
	csv := "artist,song,genre\nA,x,pop\n"
	_, err := dataset.Load(dataset.NewCSVReader("inline", strings.NewReader(csv)))

	var dsErr *dataset.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, "inline", dsErr.Source)
	assert.Contains(t, err.Error(), "popularity")
}

func TestLoadBadRow(t *testing.T) {
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	bad := strings.Replace(string(data), "Breathe,250546,False,1999", "Breathe,250546,False,nineteen", 1)

	_, err = dataset.Load(dataset.NewCSVReader("bad", strings.NewReader(bad)))
	var dsErr *dataset.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, 4, dsErr.Line)
	assert.Contains(t, err.Error(), "year")
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := dataset.Load(dataset.NewCSVReader("empty", strings.NewReader("")))
	var dsErr *dataset.DataSourceError
	assert.True(t, errors.As(err, &dsErr))
}

func TestLoadHeaderCaseAndBOM(t *testing.T) {
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	lines := strings.SplitN(string(data), "\n", 2)
	upper := "\ufeff" + strings.ToUpper(lines[0]) + "\n" + lines[1]

	tracks, err := dataset.Load(dataset.NewCSVReader("upper", strings.NewReader(upper)))
	require.NoError(t, err)
	assert.Len(t, tracks, 7)
}

func TestOpenSource(t *testing.T) {
	src, err := dataset.OpenSource("songs.csv", nil)
	require.NoError(t, err)
	assert.IsType(t, &dataset.CSVSource{}, src)

	_, err = dataset.OpenSource("songs.db", nil)
	var dsErr *dataset.DataSourceError
	assert.True(t, errors.As(err, &dsErr))

	called := ""
	_, err = dataset.OpenSource("songs.SQLite", func(path string) (dataset.Source, error) {
		called = path
		return dataset.NewCSVFile(fixture), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "songs.SQLite", called)
}

func TestParseIntAcceptsIntegralFloats(t *testing.T) {
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	floaty := strings.Replace(string(data), "Breathe,250546,False,1999,66", "Breathe,250546.0,False,1999.0,66.0", 1)

	tracks, err := dataset.Load(dataset.NewCSVReader("floaty", strings.NewReader(floaty)))
	require.NoError(t, err)
	assert.Equal(t, 1999, tracks[2].Year)
	assert.Equal(t, int64(250546), tracks[2].DurationMS)
	assert.False(t, math.IsNaN(tracks[2].DurationMinutes))
}
