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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/view"
)

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Lists the genres that can be selected",
	Long: `With --genre-scope dataset (the default) every genre in the dataset is listed.
With --genre-scope years only genres released within --years are listed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := listGenres(os.Stdout, viewConfigFromFlags())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

func listGenres(out io.Writer, config ViewConfig) error {
	session, err := openSession(config)
	if err != nil {
		return err
	}
	return writeGenres(out, session)
}

func writeGenres(out io.Writer, session *view.Session) error {
	counts := analysis.CountByGenre(view.FilterYears(session.Base(), session.Years())).Map()
	selected := session.SelectedGenres()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GENRE\tSONGS\tSELECTED")
	for _, g := range session.GenreOptions() {
		mark := ""
		if selected[g] {
			mark = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", g, counts[g], mark)
	}
	return w.Flush()
}
