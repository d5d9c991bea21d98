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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/dataset"
)

var topArtistsNumber int
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Lists the artists with the most songs",
	Long:  `Uses the selected years and genres. Artists with the same number of songs keep dataset order.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopArtists(os.Stdout, viewConfigFromFlags(), topArtistsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().IntVarP(&topArtistsNumber, "number", "n", 10, "number of results to return (0 for all)")
}

func printTopArtists(out io.Writer, config ViewConfig, numToReturn int) error {
	return runAnalysis(out, config, &TopArtistsAnalyzer{Config: AnalyserConfig{NumToReturn: numToReturn}})
}

type TopArtistsAnalyzer struct {
	Config AnalyserConfig
}

func (t *TopArtistsAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *TopArtistsAnalyzer) GetName() string {
	return "Top artists"
}

func (t *TopArtistsAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	counts := analysis.CountByArtist(tracks)

	result.results = [][]string{{"Artist", "Songs"}}
	for _, e := range counts.Top(t.Config.NumToReturn) {
		result.results = append(result.results, []string{e.Key, strconv.Itoa(e.Value)})
	}

	result.summary = fmt.Sprintf("Found %d artists and %d songs", len(counts), len(tracks))
	return
}
