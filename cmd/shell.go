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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/hits-dashboard/internal/view"
)

const shellHelp = `Commands:
  years [yyyy | yyyy:yyyy | all]   show or set the year range
  genres                           list selectable genres
  genre <g1>, <g2>, ...            select genres
  all-genres                       select all genres
  scope [dataset | years]          show or set what 'all genres' covers
  search <term>                    search songs
  details                          toggle detailed search results
  artists <term>                   search artists
  artist <name>                    show an artist's profile
  dashboard [analysis...]          show the dashboard
  top-songs [n]                    most popular songs
  help                             show this help
  quit                             leave the shell`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Explores the dataset interactively",
	Long: `Loads the dataset once and reads commands from stdin. The year range, genre
selection and genre scope persist between commands. Type 'help' for a list of commands.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := runShellFromConfig(os.Stdin, os.Stdout, viewConfigFromFlags())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShellFromConfig(in io.Reader, out io.Writer, config ViewConfig) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	session, err := openSession(config)
	if err != nil {
		return err
	}
	return (&shell{session: session, out: out, format: config.Format}).run(in)
}

type shell struct {
	session *view.Session
	out     io.Writer
	format  string
	details bool
}

func (s *shell) run(in io.Reader) error {
	fmt.Fprintf(s.out, "%d songs loaded. %s\nType 'help' for commands.\n", len(s.session.Base()), describeFilter(s.session))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if command == "quit" || command == "exit" {
			return nil
		}
		if err := s.exec(command, rest); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

func (s *shell) exec(command string, rest string) error {
	switch command {
	case "help":
		fmt.Fprintln(s.out, shellHelp)

	case "years":
		switch rest {
		case "":
		case "all":
			if err := s.session.SetYears(s.session.Bounds()); err != nil {
				return err
			}
		default:
			years, err := parseYearRange(rest)
			if err != nil {
				return err
			}
			if err := s.session.SetYears(years); err != nil {
				return err
			}
		}
		fmt.Fprintln(s.out, describeFilter(s.session))

	case "genres":
		return writeGenres(s.out, s.session)

	case "genre":
		var genres []string
		for _, g := range strings.Split(rest, ",") {
			if g = strings.TrimSpace(g); g != "" {
				genres = append(genres, g)
			}
		}
		if len(genres) == 0 {
			return fmt.Errorf("expected at least one genre")
		}
		s.session.SelectGenres(genres...)
		fmt.Fprintln(s.out, describeFilter(s.session))

	case "all-genres":
		s.session.SelectAllGenres()
		fmt.Fprintln(s.out, describeFilter(s.session))

	case "scope":
		if rest != "" {
			scope, err := view.ParseGenreScope(rest)
			if err != nil {
				return err
			}
			s.session.SetScope(scope)
		}
		fmt.Fprintf(s.out, "Genre scope: %s\n", s.session.Scope())

	case "search":
		return writeSearchResult(s.out, s.session.Search(rest), s.details, s.format)

	case "details":
		s.details = !s.details
		fmt.Fprintf(s.out, "Detailed results: %s\n", yesNo(s.details))

	case "artists":
		return writeArtistSearch(s.out, s.session, s.session.SearchArtists(rest))

	case "artist":
		if rest == "" {
			fmt.Fprintf(s.out, "%s\n", enterArtistName)
			return nil
		}
		return writeArtistProfile(s.out, s.session, rest, s.format)

	case "dashboard":
		analysers, err := dashboardAnalysers(strings.Fields(rest), nil)
		if err != nil {
			return err
		}
		return writeDashboard(s.out, s.session, analysers, s.format)

	case "top-songs":
		a := &TopSongsAnalyzer{Config: AnalyserConfig{NumToReturn: 10}}
		if rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return fmt.Errorf("invalid number: %w", err)
			}
			a.Config.NumToReturn = n
		}
		result, err := a.GetResults(s.session.View())
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, result)

	default:
		return fmt.Errorf("unknown command %q, type 'help' for a list", command)
	}
	return nil
}
