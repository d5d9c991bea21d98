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
	"github.com/ademuri/hits-dashboard/internal/view"
)

var (
	fadedMinSongs       int
	fadedResultsPerBand int
)

var fadedCmd = &cobra.Command{
	Use:   "faded-artists",
	Short: "Surfaces artists with several hits before the selected years but none since",
	Long: `Artists are grouped by how many songs they had in the selected genres: Star (10+),
Regular (5+) and Occasional (2+). Within a band the most recently active come first.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printFadedArtists(os.Stdout, viewConfigFromFlags(), fadedMinSongs, fadedResultsPerBand)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fadedCmd)

	fadedCmd.Flags().IntVar(&fadedMinSongs, "min", analysis.ThresholdOccasion, "Minimum number of songs for inclusion")
	fadedCmd.Flags().IntVar(&fadedResultsPerBand, "results", 10, "Max results shown per band")
}

func printFadedArtists(out io.Writer, config ViewConfig, minSongs int, perBand int) error {
	session, err := openSession(config)
	if err != nil {
		return err
	}
	writeFadedArtists(out, session, minSongs, perBand)
	return nil
}

func writeFadedArtists(out io.Writer, session *view.Session, minSongs int, perBand int) {
	from := session.Years().From
	faded := analysis.FadedArtists(allYears(session), from, minSongs)

	fmt.Fprintf(out, "Artists with no songs since %d\n\n", from)
	if len(faded) == 0 {
		fmt.Fprintf(out, "%s\n", noResults)
		return
	}

	for _, band := range []string{analysis.BandStar, analysis.BandRegular, analysis.BandOccasion} {
		result := Analysis{results: [][]string{{"Artist", "Songs", "First year", "Last year", "Years since"}}}
		for _, c := range faded {
			if c.Band != band || (perBand > 0 && len(result.results) > perBand) {
				continue
			}
			result.results = append(result.results, []string{
				c.Artist,
				strconv.Itoa(c.Songs),
				strconv.Itoa(c.FirstYear),
				strconv.Itoa(c.LastYear),
				strconv.Itoa(from - c.LastYear),
			})
		}
		if len(result.results) > 1 {
			fmt.Fprintf(out, "## %s\n%s\n", band, result)
		}
	}
}

// allYears is the session's genre selection applied across every year.
func allYears(session *view.Session) []dataset.Track {
	return view.Filter(session.Base(), session.Bounds(), session.SelectedGenres())
}
