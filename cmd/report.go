package cmd

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ademuri/hits-dashboard/internal/analysis"
	"github.com/ademuri/hits-dashboard/internal/view"
)

// writeReport encodes a report struct as YAML.
func writeReport(out io.Writer, report interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func filterInfo(session *view.Session) analysis.FilterInfo {
	return analysis.FilterInfo{
		Years:  session.Years().String(),
		Genres: session.SelectedGenreList(),
		Scope:  string(session.Scope()),
	}
}

// describeFilter is the one-line header printed above table output.
func describeFilter(session *view.Session) string {
	genres := "all"
	if list := session.SelectedGenreList(); list != nil {
		genres = strings.Join(list, ", ")
	}
	return fmt.Sprintf("Years: %s | Genres: %s", session.Years(), genres)
}
