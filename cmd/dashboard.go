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
	"github.com/ademuri/hits-dashboard/internal/view"
)

var dashboardParams string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [analysis...]",
	Short: "Prints the dashboard for the selected years and genres",
	Long: `Prints every dashboard analysis, or only the named ones. Analyses:
` + strings.Join(dashboardSections, ", ") + `. Also available by name: distribution,
mean-by-year, top-songs.

--params applies to every named analysis, e.g. --params n=3,field=energy.
With --format yaml the full dashboard report is printed instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDashboard(os.Stdout, viewConfigFromFlags(), args, parseParams(dashboardParams))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringVar(&dashboardParams, "params", "", "Analysis parameters, like 'n=5,field=energy'")
}

func printDashboard(out io.Writer, config ViewConfig, names []string, params map[string]string) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	analysers, err := dashboardAnalysers(names, params)
	if err != nil {
		return err
	}
	session, err := openSession(config)
	if err != nil {
		return err
	}
	return writeDashboard(out, session, analysers, config.Format)
}

// dashboardAnalysers resolves analysis names, defaulting to every dashboard
// section.
func dashboardAnalysers(names []string, params map[string]string) ([]Analyser, error) {
	if len(names) == 0 {
		names = dashboardSections
	}

	var analysers []Analyser
	for _, name := range names {
		action, err := getActionFromName(name)
		if err != nil {
			return nil, err
		}
		if configurable, ok := action.(Configurable); ok && len(params) > 0 {
			if err := configurable.Configure(params); err != nil {
				return nil, fmt.Errorf("configuring %s: %w", name, err)
			}
		}
		analysers = append(analysers, action)
	}
	return analysers, nil
}

func writeDashboard(out io.Writer, session *view.Session, analysers []Analyser, format string) error {
	tracks := session.View()

	if format == "yaml" {
		return writeReport(out, analysis.GenerateDashboard(tracks, filterInfo(session), analysis.DefaultLimits))
	}

	fmt.Fprintf(out, "%s\n\n", describeFilter(session))
	if len(tracks) == 0 {
		fmt.Fprintf(out, "%s\n", noResults)
		return nil
	}

	for _, a := range analysers {
		result, err := a.GetResults(tracks)
		if err != nil {
			return fmt.Errorf("%s: %w", a.GetName(), err)
		}
		fmt.Fprintf(out, "## %s\n", a.GetName())
		fmt.Fprintln(out, result)
	}
	return nil
}
