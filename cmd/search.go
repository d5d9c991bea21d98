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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/view"
)

const enterSearchTerm = "Please enter a search term."

var searchDetails bool

var searchCmd = &cobra.Command{
	Use:   "search [term...]",
	Short: "Searches songs by title, artist or genre",
	Long: `Matches songs whose title, artist or one of whose genres contains the term,
ignoring case. Only songs within the selected years and genres are searched.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printSearch(os.Stdout, viewConfigFromFlags(), strings.Join(args, " "), searchDetails)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchDetails, "details", false, "Also show duration, explicit flag and audio features")
}

func printSearch(out io.Writer, config ViewConfig, term string, details bool) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	session, err := openSession(config)
	if err != nil {
		return err
	}
	return writeSearchResult(out, session.Search(term), details, config.Format)
}

func writeSearchResult(out io.Writer, result view.SearchResult, details bool, format string) error {
	if !result.Performed {
		fmt.Fprintf(out, "%s\n", enterSearchTerm)
		return nil
	}
	if format == "yaml" {
		return writeReport(out, result.Tracks)
	}

	a := trackTable(result.Tracks, details)
	if !result.Empty() {
		a.summary = fmt.Sprintf("%d songs match %q", len(result.Tracks), result.Term)
	}
	fmt.Fprint(out, a)
	return nil
}

// trackTable lays tracks out one per row. details adds the columns of the
// expanded song view.
func trackTable(tracks []dataset.Track, details bool) Analysis {
	header := []string{"Song", "Artist", "Year", "Genres", "Popularity"}
	if details {
		header = append(header, "Duration (min)", "Explicit", "Danceability", "Energy", "Instrumentalness")
	}

	a := Analysis{results: [][]string{header}}
	for _, t := range tracks {
		row := []string{t.Song, t.Artist, strconv.Itoa(t.Year), t.GenreList(), formatPopularity(t.Popularity)}
		if details {
			row = append(row,
				formatFloat(t.DurationMinutes),
				yesNo(t.Explicit),
				formatFloat(t.Danceability),
				formatFloat(t.Energy),
				strconv.FormatFloat(t.Instrumentalness, 'g', 3, 64),
			)
		}
		a.results = append(a.results, row)
	}
	return a
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
