package cmd

import (
	"fmt"
	"strconv"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/dataset"
)

type SongsPerYearAnalyzer struct {
	Config AnalyserConfig
}

func (t *SongsPerYearAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *SongsPerYearAnalyzer) GetName() string {
	return "Songs per year"
}

func (t *SongsPerYearAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	result.results = [][]string{{"Year", "Songs"}}
	for _, y := range analysis.CountByYear(tracks) {
		result.results = append(result.results, []string{strconv.Itoa(y.Year), strconv.Itoa(y.Count)})
	}
	return
}

// MeanByYearAnalyzer averages a field per release year. Years without songs
// are left out rather than shown as empty.
type MeanByYearAnalyzer struct {
	Config AnalyserConfig
}

func (t *MeanByYearAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *MeanByYearAnalyzer) GetName() string {
	return fmt.Sprintf("Mean %s by year", t.field())
}

func (t *MeanByYearAnalyzer) field() dataset.Field {
	if t.Config.Field == "" {
		return dataset.FieldPopularity
	}
	return t.Config.Field
}

func (t *MeanByYearAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	result.results = [][]string{{"Year", "Mean", "Songs"}}
	for _, y := range analysis.MeanByYear(tracks, t.field()) {
		result.results = append(result.results, []string{
			strconv.Itoa(y.Year),
			formatFloat(y.Mean),
			strconv.Itoa(y.Count),
		})
	}
	return
}
