package analysis_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/dataset"
)

func track(artist, song string, year int, popularity float64, genres ...string) dataset.Track {
	return dataset.Track{Artist: artist, Song: song, Year: year, Popularity: popularity, Genres: genres}
}

func TestSumPopularityByGenre(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2000, 80, "pop"),
		track("B", "b", 2000, 50, "pop", "rock"),
	}
	got := analysis.SumPopularityByGenre(tracks)
	assert.Equal(t, map[string]float64{"pop": 130, "rock": 50}, got.Map())
	assert.Equal(t, "pop", got[0].Key)
}

func TestCountByGenreExploded(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2000, 1, "rock", "pop"),
		track("B", "b", 2000, 1, "pop"),
		track("C", "c", 2000, 1, "jazz"),
	}
	got := analysis.CountByGenre(tracks)
	assert.Equal(t, analysis.Ranking[int]{{"rock", 1}, {"pop", 2}, {"jazz", 1}}, got)
	assert.Equal(t, analysis.Ranking[int]{{"pop", 2}, {"rock", 1}}, got.Top(2))
}

func TestTopTieBreakFirstSeen(t *testing.T) {
	r := analysis.Ranking[int]{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 1}, {"e", 2}}
	assert.Equal(t, analysis.Ranking[int]{{"b", 3}, {"c", 3}, {"e", 2}, {"a", 1}, {"d", 1}}, r.Top(0))
	assert.Equal(t, analysis.Ranking[int]{{"b", 3}, {"c", 3}, {"e", 2}}, r.Top(3))
	assert.Len(t, r.Top(10), 5)

	// Top never reorders the receiver.
	assert.Equal(t, "a", r[0].Key)
}

func TestCountByArtist(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2000, 1, "pop"),
		track("B", "b", 2000, 1, "pop"),
		track("A", "c", 2001, 1, "pop"),
	}
	assert.Equal(t, analysis.Ranking[int]{{"A", 2}, {"B", 1}}, analysis.CountByArtist(tracks))
}

func TestCountByYear(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2002, 1, "pop"),
		track("B", "b", 2000, 1, "pop"),
		track("C", "c", 2002, 1, "pop"),
	}
	assert.Equal(t, []analysis.YearCount{{2000, 1}, {2002, 2}}, analysis.CountByYear(tracks))
	assert.Empty(t, analysis.CountByYear(nil))
}

func TestMeanByYear(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2001, 60, "pop"),
		track("B", "b", 1999, 10, "pop"),
		track("C", "c", 2001, 80, "pop"),
	}
	got := analysis.MeanByYear(tracks, dataset.FieldPopularity)
	assert.Equal(t, []analysis.YearMean{{Year: 1999, Mean: 10, Count: 1}, {Year: 2001, Mean: 70, Count: 2}}, got)

	for _, m := range got {
		assert.False(t, math.IsNaN(m.Mean))
	}
	assert.Empty(t, analysis.MeanByYear(nil, dataset.FieldPopularity))
}

func TestExplicitRatio(t *testing.T) {
	var tracks []dataset.Track
	for i := 0; i < 10; i++ {
		tracks = append(tracks, dataset.Track{Explicit: i < 3})
	}

	r := analysis.ExplicitRatio(tracks)
	assert.Equal(t, analysis.Ratio{Explicit: 3, NonExplicit: 7}, r)

	explicit, nonExplicit, err := r.Percentages()
	require.NoError(t, err)
	assert.InDelta(t, 30.0, explicit, 1e-9)
	assert.InDelta(t, 70.0, nonExplicit, 1e-9)
}

func TestExplicitRatioUndefined(t *testing.T) {
	r := analysis.ExplicitRatio(nil)
	assert.Equal(t, 0, r.Total())

	_, _, err := r.Percentages()
	assert.True(t, errors.Is(err, analysis.ErrUndefinedRatio))

	share := analysis.NewExplicitShare(r)
	assert.False(t, share.Applicable)
	assert.Nil(t, share.ExplicitPercent)
}

func TestCountTotals(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2000, 1, "rock", "pop"),
		track("A", "b", 2000, 1, "pop"),
		track("B", "c", 2000, 1, "jazz"),
	}
	assert.Equal(t, analysis.Totals{Songs: 3, Artists: 2, Genres: 3}, analysis.CountTotals(tracks))
}

func TestTopTracks(t *testing.T) {
	tracks := []dataset.Track{
		track("A", "a", 2000, 50, "pop"),
		track("B", "b", 2000, 90, "pop"),
		track("C", "c", 2000, 50, "pop"),
		track("D", "d", 2000, 70, "pop"),
	}
	var got []string
	for _, tr := range analysis.TopTracks(tracks, 3) {
		got = append(got, tr.Song)
	}
	assert.Equal(t, []string{"b", "d", "a"}, got)
	assert.Equal(t, "a", tracks[0].Song)
}

func TestSummarize(t *testing.T) {
	s := analysis.Summarize([]float64{5, 1, 4, 2, 3})
	assert.Equal(t, analysis.Summary{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5, Count: 5}, s)

	s = analysis.Summarize([]float64{1, 2, 3, 4})
	assert.InDelta(t, 1.75, s.Q1, 1e-9)
	assert.InDelta(t, 2.5, s.Median, 1e-9)
	assert.InDelta(t, 3.25, s.Q3, 1e-9)

	s = analysis.Summarize([]float64{0.7})
	assert.Equal(t, analysis.Summary{Min: 0.7, Q1: 0.7, Median: 0.7, Q3: 0.7, Max: 0.7, Count: 1}, s)

	assert.Equal(t, analysis.Summary{}, analysis.Summarize(nil))
}

func TestDistributionByGenre(t *testing.T) {
	tracks := []dataset.Track{
		{Genres: []string{"pop", "rock"}, Danceability: 0.8},
		{Genres: []string{"pop"}, Danceability: 0.6},
		{Genres: []string{"rock"}, Danceability: 0.2},
	}
	got := analysis.DistributionByGenre(tracks, dataset.FieldDanceability)
	require.Len(t, got, 2)
	assert.Equal(t, "pop", got[0].Genre)
	assert.InDelta(t, 0.7, got[0].Median, 1e-9)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "rock", got[1].Genre)
	assert.InDelta(t, 0.5, got[1].Median, 1e-9)
}
