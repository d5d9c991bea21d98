package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/dataset"
)

// TopGenresAnalyzer counts songs per genre. A song with several genres
// counts towards each of them.
type TopGenresAnalyzer struct {
	Config AnalyserConfig
}

func (t *TopGenresAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *TopGenresAnalyzer) GetName() string {
	return "Songs per genre"
}

func (t *TopGenresAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	counts := analysis.CountByGenre(tracks)

	result.results = [][]string{{"Genre", "Songs"}}
	for _, e := range counts.Top(t.Config.NumToReturn) {
		result.results = append(result.results, []string{e.Key, strconv.Itoa(e.Value)})
	}
	result.summary = fmt.Sprintf("Found %d genres over %d songs", len(counts), len(tracks))
	return
}

type GenrePopularityAnalyzer struct {
	Config AnalyserConfig
}

func (t *GenrePopularityAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *GenrePopularityAnalyzer) GetName() string {
	return "Genres by total popularity"
}

func (t *GenrePopularityAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	result.results = [][]string{{"Genre", "Total popularity"}}
	for _, e := range analysis.SumPopularityByGenre(tracks).Top(t.Config.NumToReturn) {
		result.results = append(result.results, []string{e.Key, formatPopularity(e.Value)})
	}
	return
}

// DistributionAnalyzer summarizes a field per genre, highest median first.
type DistributionAnalyzer struct {
	Config AnalyserConfig
}

func (t *DistributionAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *DistributionAnalyzer) GetName() string {
	return fmt.Sprintf("Distribution of %s by genre", t.field())
}

func (t *DistributionAnalyzer) field() dataset.Field {
	if t.Config.Field == "" {
		return dataset.FieldDanceability
	}
	return t.Config.Field
}

func (t *DistributionAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	summaries := analysis.DistributionByGenre(tracks, t.field())
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Median > summaries[j].Median })
	if t.Config.NumToReturn > 0 && len(summaries) > t.Config.NumToReturn {
		summaries = summaries[:t.Config.NumToReturn]
	}

	result.results = [][]string{{"Genre", "Min", "Q1", "Median", "Q3", "Max", "Songs"}}
	for _, s := range summaries {
		result.results = append(result.results, []string{
			s.Genre,
			formatFloat(s.Min),
			formatFloat(s.Q1),
			formatFloat(s.Median),
			formatFloat(s.Q3),
			formatFloat(s.Max),
			strconv.Itoa(s.Count),
		})
	}
	return
}
