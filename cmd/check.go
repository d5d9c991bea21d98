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

	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/store"
	"github.com/ademuri/hits-dashboard/internal/view"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates the dataset and reports what loading dropped",
	Long: `Loads the dataset like every other command does, then reports the raw row count,
duplicate (artist, song) rows removed, rows dropped for having no genre, and the
year range and genres that remain.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := checkData(os.Stdout, viewConfigFromFlags().DataPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkData(out io.Writer, dataPath string) error {
	src, err := dataset.OpenSource(dataPath, store.Open)
	if err != nil {
		return err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	tracks, stats, err := dataset.LoadWithStats(src)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	years := "none"
	if bounds, ok := view.YearBounds(tracks); ok {
		years = bounds.String()
	}

	result := Analysis{results: [][]string{
		{"Check", "Value"},
		{"Raw rows", strconv.Itoa(stats.Raw)},
		{"Duplicates removed", strconv.Itoa(stats.Duplicates)},
		{"Without genre", strconv.Itoa(stats.NoGenre)},
		{"Songs", strconv.Itoa(len(tracks))},
		{"Years", years},
		{"Genres", strconv.Itoa(len(view.AllGenres(tracks)))},
	}}
	fmt.Fprintf(out, "%s\n", dataPath)
	fmt.Fprint(out, result)
	return nil
}
