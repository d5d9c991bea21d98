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

var topSongsNumber int
var topSongsCmd = &cobra.Command{
	Use:   "top-songs",
	Short: "Lists the most popular songs",
	Long:  `Uses the selected years and genres. Songs with equal popularity keep dataset order.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopSongs(os.Stdout, viewConfigFromFlags(), topSongsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topSongsCmd)

	topSongsCmd.Flags().IntVarP(&topSongsNumber, "number", "n", 10, "number of results to return (0 for all)")
}

func printTopSongs(out io.Writer, config ViewConfig, numToReturn int) error {
	return runAnalysis(out, config, &TopSongsAnalyzer{Config: AnalyserConfig{NumToReturn: numToReturn}})
}

type TopSongsAnalyzer struct {
	Config AnalyserConfig
}

func (t *TopSongsAnalyzer) Configure(params map[string]string) error {
	return t.Config.configure(params)
}

func (t *TopSongsAnalyzer) GetName() string {
	return "Most popular songs"
}

func (t *TopSongsAnalyzer) GetResults(tracks []dataset.Track) (result Analysis, err error) {
	result.results = [][]string{{"Song", "Artist", "Year", "Popularity"}}
	for _, track := range analysis.TopTracks(tracks, t.Config.NumToReturn) {
		result.results = append(result.results, []string{
			track.Song,
			track.Artist,
			strconv.Itoa(track.Year),
			formatPopularity(track.Popularity),
		})
	}
	return
}

// formatPopularity drops the decimals from whole-number scores.
func formatPopularity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
