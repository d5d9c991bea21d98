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
	"github.com/ademuri/hits-dashboard/internal/view"
)

var newArtistsNumber int
var newArtistsMin int
var newArtistsCmd = &cobra.Command{
	Use:   "new-artists",
	Short: "Lists artists whose first hit falls within the selected years",
	Long: `An artist is new if none of their songs in the selected genres came out before
the first of the selected years.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printNewArtists(os.Stdout, viewConfigFromFlags(), newArtistsNumber, newArtistsMin)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(newArtistsCmd)

	newArtistsCmd.Flags().IntVarP(&newArtistsNumber, "number", "n", 0, "number of results to return (0 for all)")
	newArtistsCmd.Flags().IntVar(&newArtistsMin, "min", 1, "Minimum number of songs within the selected years")
}

func printNewArtists(out io.Writer, config ViewConfig, numToReturn int, minSongs int) error {
	session, err := openSession(config)
	if err != nil {
		return err
	}
	fmt.Fprint(out, newArtists(session, numToReturn, minSongs))
	return nil
}

func newArtists(session *view.Session, numToReturn int, minSongs int) (result Analysis) {
	years := session.Years()
	counts := analysis.NewArtists(allYears(session), session.View(), years.From)

	result.results = [][]string{{"Artist", "Songs"}}
	found := 0
	for _, e := range counts.Top(0) {
		if e.Value < minSongs {
			continue
		}
		found++
		if numToReturn == 0 || found <= numToReturn {
			result.results = append(result.results, []string{e.Key, strconv.Itoa(e.Value)})
		}
	}
	result.summary = fmt.Sprintf("Found %d new artists in %s", found, years)
	return
}
