package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/dataset"
)

const notApplicable = "n/a"

type TotalsAnalyzer struct{}

func (t *TotalsAnalyzer) Configure(params map[string]string) error {
	return nil
}

func (t *TotalsAnalyzer) GetName() string {
	return "Totals"
}

func (t *TotalsAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	result.results = [][]string{{"Songs", "Artists", "Genres"}}
	if len(tracks) == 0 {
		return
	}
	totals := analysis.CountTotals(tracks)
	result.results = append(result.results, []string{
		strconv.Itoa(totals.Songs),
		strconv.Itoa(totals.Artists),
		strconv.Itoa(totals.Genres),
	})
	return
}

// ExplicitAnalyzer shows the explicit share of songs, or n/a when there are
// no songs to take a share of.
type ExplicitAnalyzer struct{}

func (t *ExplicitAnalyzer) Configure(params map[string]string) error {
	return nil
}

func (t *ExplicitAnalyzer) GetName() string {
	return "Explicit content"
}

func (t *ExplicitAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	ratio := analysis.ExplicitRatio(tracks)
	result.results = [][]string{{"", "Songs", "Percent"}}

	explicit, nonExplicit, err := ratio.Percentages()
	if errors.Is(err, analysis.ErrUndefinedRatio) {
		result.summary = fmt.Sprintf("Explicit share: %s", notApplicable)
		return result, nil
	}
	if err != nil {
		return
	}

	result.results = append(result.results,
		[]string{"Explicit", strconv.Itoa(ratio.Explicit), formatFloat(explicit) + "%"},
		[]string{"Not explicit", strconv.Itoa(ratio.NonExplicit), formatFloat(nonExplicit) + "%"},
	)
	return
}
