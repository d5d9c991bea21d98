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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/view"
)

var (
	limitArtists int
	limitSongs   int
	limitGenres  int
	limitTags    int
)

var topNCmd = &cobra.Command{
	Use:   "top-n",
	Short: "Generates a textual summary of the selected years and genres",
	Long:  `Generates a plain-text summary with numbered lists of the top artists, songs and genres.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopN(os.Stdout, viewConfigFromFlags())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topNCmd)
	topNCmd.Flags().IntVar(&limitArtists, "artists", 10, "Number of top artists to show")
	topNCmd.Flags().IntVar(&limitSongs, "songs", 10, "Number of top songs to show")
	topNCmd.Flags().IntVar(&limitGenres, "genres", 5, "Number of top genres to show")
	topNCmd.Flags().IntVar(&limitTags, "tags", 3, "Number of genres to show for each artist")
}

func printTopN(out io.Writer, config ViewConfig) error {
	session, err := openSession(config)
	if err != nil {
		return err
	}
	writeTopN(out, session)
	return nil
}

func writeTopN(out io.Writer, session *view.Session) {
	tracks := session.View()

	// 1. Totals
	totals := analysis.CountTotals(tracks)
	fmt.Fprintf(out, "Hit Songs Summary\n")
	fmt.Fprintf(out, "%s\n", describeFilter(session))
	fmt.Fprintf(out, "Songs: %d, Artists: %d, Genres: %d\n\n", totals.Songs, totals.Artists, totals.Genres)

	// 2. Top Artists
	if limitArtists > 0 {
		fmt.Fprintf(out, "## Top %d Artists\n", limitArtists)
		for i, e := range analysis.CountByArtist(tracks).Top(limitArtists) {
			tags := artistGenres(tracks, e.Key, limitTags)
			if tags != "" {
				fmt.Fprintf(out, "%d. %s (%d) - [%s]\n", i+1, e.Key, e.Value, tags)
			} else {
				fmt.Fprintf(out, "%d. %s (%d)\n", i+1, e.Key, e.Value)
			}
		}
		fmt.Fprintln(out)
	}

	// 3. Top Songs
	if limitSongs > 0 {
		fmt.Fprintf(out, "## Top %d Songs\n", limitSongs)
		for i, t := range analysis.TopTracks(tracks, limitSongs) {
			fmt.Fprintf(out, "%d. %s - %s (%d, %s)\n", i+1, t.Song, t.Artist, t.Year, formatPopularity(t.Popularity))
		}
		fmt.Fprintln(out)
	}

	// 4. Top Genres
	if limitGenres > 0 {
		fmt.Fprintf(out, "## Top %d Genres\n", limitGenres)
		for i, e := range analysis.CountByGenre(tracks).Top(limitGenres) {
			fmt.Fprintf(out, "%d. %s (%d)\n", i+1, e.Key, e.Value)
		}
		fmt.Fprintln(out)
	}
}

// artistGenres lists an artist's most common genres among tracks.
func artistGenres(tracks []dataset.Track, artist string, limit int) string {
	if limit <= 0 {
		return ""
	}
	var genres []string
	for _, e := range analysis.CountByGenre(view.ArtistTracks(tracks, artist)).Top(limit) {
		genres = append(genres, e.Key)
	}
	return strings.Join(genres, ", ")
}
