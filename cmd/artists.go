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

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/view"
)

const (
	enterArtistName = "Please enter an artist's name."
	noArtistsFound  = "No artists found."
)

var artistSelect string

var artistsCmd = &cobra.Command{
	Use:   "artists [term...]",
	Short: "Searches artists and shows an artist's profile",
	Long: `Lists the artists whose name contains the term, ignoring case. With --select,
prints the profile of the artist with exactly that name instead: popularity,
songs and duration by year, most popular songs, genres and loudness.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printArtists(os.Stdout, viewConfigFromFlags(), strings.Join(args, " "), artistSelect)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistsCmd)

	artistsCmd.Flags().StringVar(&artistSelect, "select", "", "Artist to show the profile of")
}

func printArtists(out io.Writer, config ViewConfig, term string, selected string) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	session, err := openSession(config)
	if err != nil {
		return err
	}
	if selected != "" {
		return writeArtistProfile(out, session, selected, config.Format)
	}
	return writeArtistSearch(out, session, session.SearchArtists(term))
}

func writeArtistSearch(out io.Writer, session *view.Session, result view.ArtistSearchResult) error {
	if !result.Performed {
		fmt.Fprintf(out, "%s\n", enterArtistName)
		return nil
	}
	if result.Empty() {
		fmt.Fprintf(out, "%s\n", noArtistsFound)
		return nil
	}

	counts := analysis.CountByArtist(session.View()).Map()
	a := Analysis{results: [][]string{{"Artist", "Songs"}}}
	for _, artist := range result.Artists {
		a.results = append(a.results, []string{artist, strconv.Itoa(counts[artist])})
	}
	a.summary = fmt.Sprintf("%d artists match %q", len(result.Artists), result.Term)
	fmt.Fprint(out, a)
	return nil
}

func writeArtistProfile(out io.Writer, session *view.Session, artist string, format string) error {
	profile := analysis.GenerateArtistProfile(session.View(), artist, analysis.DefaultLimits)
	if profile == nil {
		fmt.Fprintf(out, "%s\n", noArtistsFound)
		return nil
	}
	if format == "yaml" {
		return writeReport(out, profile)
	}

	fmt.Fprintf(out, "%s (%d songs)\n%s\n\n", profile.Artist, profile.Songs, describeFilter(session))

	byYear := Analysis{results: [][]string{{"Year", "Songs", "Mean popularity", "Mean duration (min)"}}}
	for i, y := range profile.SongsPerYear {
		// All three per-year series cover the same years in the same order.
		byYear.results = append(byYear.results, []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Count),
			formatFloat(profile.PopularityByYear[i].Mean),
			formatFloat(profile.DurationByYear[i].Mean),
		})
	}
	fmt.Fprintf(out, "## By year\n%s\n", byYear)

	popular := Analysis{results: [][]string{{"Song", "Year", "Popularity"}}}
	for _, s := range profile.MostPopular {
		popular.results = append(popular.results, []string{s.Song, strconv.Itoa(s.Year), formatPopularity(s.Value)})
	}
	fmt.Fprintf(out, "## Most popular songs\n%s\n", popular)

	genres := Analysis{results: [][]string{{"Genre", "Songs"}}}
	for _, g := range profile.Genres {
		genres.results = append(genres.results, []string{g.Genre, strconv.Itoa(g.Songs)})
	}
	fmt.Fprintf(out, "## Genres\n%s\n", genres)

	loudness := Analysis{results: [][]string{{"Song", "Year", "Loudness (dB)"}}}
	for _, s := range profile.Loudness {
		loudness.results = append(loudness.results, []string{s.Song, strconv.Itoa(s.Year), formatFloat(s.Value)})
	}
	fmt.Fprintf(out, "## Loudness\n%s", loudness)
	return nil
}
