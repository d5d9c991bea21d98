/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

const noResults = "No results found."

type Analysis struct {
	results [][]string
	summary string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int

	// Numeric field to aggregate, for analyses that take one.
	Field dataset.Field
}

type Analyser interface {
	GetResults(tracks []dataset.Track) (Analysis, error)

	GetName() string
}

type Configurable interface {
	Configure(params map[string]string) error
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	if len(a.results) <= 1 {
		fmt.Fprintf(out, "%s\n", noResults)
		if a.summary != "" {
			fmt.Fprintf(out, "%s\n", a.summary)
		}
		return out.String()
	}
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	if a.summary != "" {
		fmt.Fprintf(out, "%s\n", a.summary)
	}
	return out.String()
}

// configure applies the shared "n" and "field" params to config.
func (c *AnalyserConfig) configure(params map[string]string) error {
	if val, ok := params["n"]; ok {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid n: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("invalid n: %d is negative", n)
		}
		c.NumToReturn = n
	}
	if val, ok := params["field"]; ok {
		f, err := dataset.ParseField(val)
		if err != nil {
			return err
		}
		c.Field = f
	}
	return nil
}

// parseParams turns "n=5,field=energy" into a map. Pairs without '=' are
// ignored.
func parseParams(v string) map[string]string {
	params := make(map[string]string)
	if v == "" {
		return params
	}
	for _, pair := range strings.Split(v, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return params
}

// dashboardSections lists the dashboard analyses in display order.
var dashboardSections = []string{
	"totals",
	"top-genres",
	"explicit",
	"top-artists",
	"songs-per-year",
	"genre-popularity",
	"danceability",
}

func getActionFromName(actionName string) (Analyser, error) {
	// Pointers required for Configure.
	actionMap := map[string]Analyser{
		"totals":           &TotalsAnalyzer{},
		"top-genres":       &TopGenresAnalyzer{Config: AnalyserConfig{NumToReturn: 8}},
		"explicit":         &ExplicitAnalyzer{},
		"top-artists":      &TopArtistsAnalyzer{Config: AnalyserConfig{NumToReturn: 5}},
		"songs-per-year":   &SongsPerYearAnalyzer{},
		"genre-popularity": &GenrePopularityAnalyzer{Config: AnalyserConfig{NumToReturn: 10}},
		"danceability":     &DistributionAnalyzer{Config: AnalyserConfig{Field: dataset.FieldDanceability}},
		"distribution":     &DistributionAnalyzer{Config: AnalyserConfig{Field: dataset.FieldDanceability}},
		"mean-by-year":     &MeanByYearAnalyzer{Config: AnalyserConfig{Field: dataset.FieldPopularity}},
		"top-songs":        &TopSongsAnalyzer{Config: AnalyserConfig{NumToReturn: 10}},
	}

	action, ok := actionMap[actionName]
	if !ok {
		names := make([]string, 0, len(actionMap))
		for name := range actionMap {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("Invalid analysis_name: %s (want one of %s)", actionName, strings.Join(names, ", "))
	}

	return action, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
