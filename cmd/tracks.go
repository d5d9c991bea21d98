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

	"github.com/spf13/cobra"
)

var tracksDetails bool

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Prints every song within the selected years and genres",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTracks(os.Stdout, viewConfigFromFlags(), tracksDetails)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tracksCmd)

	tracksCmd.Flags().BoolVar(&tracksDetails, "details", false, "Also show duration, explicit flag and audio features")
}

func printTracks(out io.Writer, config ViewConfig, details bool) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	session, err := openSession(config)
	if err != nil {
		return err
	}

	tracks := session.View()
	if config.Format == "yaml" {
		return writeReport(out, tracks)
	}

	a := trackTable(tracks, details)
	a.summary = fmt.Sprintf("%s | %d songs", describeFilter(session), len(tracks))
	fmt.Fprint(out, a)
	return nil
}
