package analysis

import (
	"errors"
	"math"
	"sort"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

// ErrUndefinedRatio is returned for a percentage over an empty group.
var ErrUndefinedRatio = errors.New("ratio undefined for an empty group")

// Entry is one key of a grouped reduction.
type Entry[V int | float64] struct {
	Key   string `yaml:"key"`
	Value V      `yaml:"value"`
}

// Ranking holds grouped values in the order their keys were first seen.
type Ranking[V int | float64] []Entry[V]

// Top returns the n largest entries, largest first. Equal values keep their
// first-seen order. n <= 0 returns every entry, sorted.
func (r Ranking[V]) Top(n int) Ranking[V] {
	sorted := make(Ranking[V], len(r))
	copy(sorted, r)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Map returns the ranking as a key to value mapping.
func (r Ranking[V]) Map() map[string]V {
	m := make(map[string]V, len(r))
	for _, e := range r {
		m[e.Key] = e.Value
	}
	return m
}

type tally[V int | float64] struct {
	index   map[string]int
	entries Ranking[V]
}

func newTally[V int | float64]() *tally[V] {
	return &tally[V]{index: make(map[string]int)}
}

func (t *tally[V]) add(key string, v V) {
	i, ok := t.index[key]
	if !ok {
		t.index[key] = len(t.entries)
		t.entries = append(t.entries, Entry[V]{Key: key, Value: v})
		return
	}
	t.entries[i].Value += v
}

// CountByGenre counts tracks per genre over the exploded view, so a track
// with two genres counts once for each.
func CountByGenre(tracks []dataset.Track) Ranking[int] {
	t := newTally[int]()
	for _, row := range dataset.Explode(tracks) {
		t.add(row.Genre, 1)
	}
	return t.entries
}

// CountByArtist counts tracks per artist.
func CountByArtist(tracks []dataset.Track) Ranking[int] {
	t := newTally[int]()
	for _, track := range tracks {
		t.add(track.Artist, 1)
	}
	return t.entries
}

// SumPopularityByGenre totals popularity per genre over the exploded view.
func SumPopularityByGenre(tracks []dataset.Track) Ranking[float64] {
	t := newTally[float64]()
	for _, row := range dataset.Explode(tracks) {
		t.add(row.Genre, row.Popularity)
	}
	return t.entries
}

// YearCount is the number of tracks released in a year.
type YearCount struct {
	Year  int `yaml:"year"`
	Count int `yaml:"count"`
}

// CountByYear counts tracks per release year, in ascending year order.
func CountByYear(tracks []dataset.Track) []YearCount {
	counts := make(map[int]int)
	for _, t := range tracks {
		counts[t.Year]++
	}
	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// YearMean is the mean of a field over the tracks of one year.
type YearMean struct {
	Year  int     `yaml:"year"`
	Mean  float64 `yaml:"mean"`
	Count int     `yaml:"count"`
}

// MeanByYear averages field per release year, in ascending year order.
// Years without tracks have no entry.
func MeanByYear(tracks []dataset.Track, field dataset.Field) []YearMean {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for i := range tracks {
		sums[tracks[i].Year] += tracks[i].Value(field)
		counts[tracks[i].Year]++
	}
	out := make([]YearMean, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearMean{Year: year, Mean: sums[year] / float64(n), Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Ratio splits a view into explicit and non-explicit tracks.
type Ratio struct {
	Explicit    int `yaml:"explicit"`
	NonExplicit int `yaml:"non_explicit"`
}

func (r Ratio) Total() int {
	return r.Explicit + r.NonExplicit
}

// Percentages returns the explicit and non-explicit shares in percent, or
// ErrUndefinedRatio when there are no tracks.
func (r Ratio) Percentages() (explicit, nonExplicit float64, err error) {
	total := r.Total()
	if total == 0 {
		return 0, 0, ErrUndefinedRatio
	}
	return float64(r.Explicit) / float64(total) * 100, float64(r.NonExplicit) / float64(total) * 100, nil
}

// ExplicitRatio counts explicit and non-explicit tracks.
func ExplicitRatio(tracks []dataset.Track) Ratio {
	var r Ratio
	for _, t := range tracks {
		if t.Explicit {
			r.Explicit++
		} else {
			r.NonExplicit++
		}
	}
	return r
}

// Totals are the headline numbers of a view.
type Totals struct {
	Songs   int `yaml:"songs"`
	Artists int `yaml:"artists"`
	Genres  int `yaml:"genres"`
}

func CountTotals(tracks []dataset.Track) Totals {
	artists := make(map[string]bool)
	genres := make(map[string]bool)
	for _, t := range tracks {
		artists[t.Artist] = true
		for _, g := range t.Genres {
			genres[g] = true
		}
	}
	return Totals{Songs: len(tracks), Artists: len(artists), Genres: len(genres)}
}

// TopTracks returns the n most popular tracks. Ties keep input order.
func TopTracks(tracks []dataset.Track, n int) []dataset.Track {
	sorted := make([]dataset.Track, len(tracks))
	copy(sorted, tracks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Popularity > sorted[j].Popularity })
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Summary is a five-number summary of a sample.
type Summary struct {
	Min    float64 `yaml:"min"`
	Q1     float64 `yaml:"q1"`
	Median float64 `yaml:"median"`
	Q3     float64 `yaml:"q3"`
	Max    float64 `yaml:"max"`
	Count  int     `yaml:"count"`
}

// GenreSummary is the distribution of a field within one genre.
type GenreSummary struct {
	Genre   string `yaml:"genre"`
	Summary `yaml:",inline"`
}

// DistributionByGenre summarizes field per genre over the exploded view, in
// first-seen genre order.
func DistributionByGenre(tracks []dataset.Track, field dataset.Field) []GenreSummary {
	index := make(map[string]int)
	var genres []string
	var samples [][]float64
	for _, row := range dataset.Explode(tracks) {
		i, ok := index[row.Genre]
		if !ok {
			i = len(genres)
			index[row.Genre] = i
			genres = append(genres, row.Genre)
			samples = append(samples, nil)
		}
		samples[i] = append(samples[i], row.Value(field))
	}

	out := make([]GenreSummary, len(genres))
	for i, g := range genres {
		out[i] = GenreSummary{Genre: g, Summary: Summarize(samples[i])}
	}
	return out
}

// Summarize computes the five-number summary of values using linearly
// interpolated quantiles. An empty sample gives a zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return Summary{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Count:  len(sorted),
	}
}

// quantile expects sorted to be non-empty and ascending.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
