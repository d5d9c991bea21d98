package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ademuri/hits-dashboard/internal/dataset"
)

const testDataPath = "../internal/dataset/testdata/songs.csv"

func testConfig() ViewConfig {
	return ViewConfig{DataPath: testDataPath, Format: "table"}
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("Expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func TestOpenSessionMissingFile(t *testing.T) {
	config := testConfig()
	config.DataPath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := openSession(config)
	if err == nil {
		t.Fatalf("openSession should have errored with no dataset")
	}
	var dsErr *dataset.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("Expected a DataSourceError, got %v", err)
	}
}

func TestOpenSessionFilters(t *testing.T) {
	config := testConfig()
	config.Years = "2000"
	config.Genres = []string{"rock", "hip hop"}

	session, err := openSession(config)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	if n := len(session.View()); n != 3 {
		t.Fatalf("Expected 3 songs in 2000 for rock or hip hop, got %d", n)
	}
}

func TestOpenSessionBadYears(t *testing.T) {
	config := testConfig()
	config.Years = "last year"
	if _, err := openSession(config); err == nil {
		t.Fatalf("Expected error for invalid --years")
	}
}

func TestOpenSessionBadScope(t *testing.T) {
	config := testConfig()
	config.GenreScope = "decade"
	if _, err := openSession(config); err == nil {
		t.Fatalf("Expected error for invalid --genre-scope")
	}
}

func TestPrintDashboard(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printDashboard(out, testConfig(), nil, nil); err != nil {
		t.Fatalf("printDashboard: %v", err)
	}
	assertContains(t, out.String(),
		"Years: 1999-2005 | Genres: all",
		"## Totals",
		"## Songs per genre",
		"## Explicit content",
		"28.57%",
		"## Top artists",
		"Eminem",
		"## Songs per year",
		"## Genres by total popularity",
		"252",
		"## Distribution of danceability by genre",
	)
}

func TestPrintDashboardSubsetWithParams(t *testing.T) {
	out := new(bytes.Buffer)
	err := printDashboard(out, testConfig(), []string{"mean-by-year"}, map[string]string{"field": "energy"})
	if err != nil {
		t.Fatalf("printDashboard: %v", err)
	}
	assertContains(t, out.String(), "## Mean energy by year", "2005")
	if strings.Contains(out.String(), "## Totals") {
		t.Fatalf("Only the named analysis should be printed:\n%s", out)
	}
}

func TestPrintDashboardEmptyView(t *testing.T) {
	config := testConfig()
	config.Years = "1980:1985"

	out := new(bytes.Buffer)
	if err := printDashboard(out, config, nil, nil); err != nil {
		t.Fatalf("printDashboard: %v", err)
	}
	assertContains(t, out.String(), noResults)
}

func TestPrintDashboardErrors(t *testing.T) {
	out := new(bytes.Buffer)
	err := printDashboard(out, testConfig(), []string{"top-albums"}, nil)
	if err == nil || !strings.Contains(err.Error(), "Invalid analysis_name") {
		t.Fatalf("Expected an invalid analysis error, got %v", err)
	}

	err = printDashboard(out, testConfig(), nil, map[string]string{"n": "lots"})
	if err == nil {
		t.Fatalf("Expected an error for a bad n param")
	}

	config := testConfig()
	config.Format = "html"
	if err := printDashboard(out, config, nil, nil); err == nil {
		t.Fatalf("Expected an error for an unknown format")
	}
}

func TestPrintDashboardYAML(t *testing.T) {
	config := testConfig()
	config.Format = "yaml"
	config.Genres = []string{"pop"}

	out := new(bytes.Buffer)
	if err := printDashboard(out, config, nil, nil); err != nil {
		t.Fatalf("printDashboard: %v", err)
	}

	var report struct {
		Filter struct {
			Genres []string `yaml:"genres"`
		} `yaml:"filter"`
		Totals struct {
			Songs int `yaml:"songs"`
		} `yaml:"totals"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out)
	}
	if report.Totals.Songs != 3 {
		t.Fatalf("Expected 3 pop songs, got %d", report.Totals.Songs)
	}
	if len(report.Filter.Genres) != 1 || report.Filter.Genres[0] != "pop" {
		t.Fatalf("Expected the genre filter in the report, got %v", report.Filter.Genres)
	}
}

func TestPrintSearch(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printSearch(out, testConfig(), "  ", false); err != nil {
		t.Fatalf("printSearch: %v", err)
	}
	assertContains(t, out.String(), enterSearchTerm)

	out.Reset()
	if err := printSearch(out, testConfig(), "BREATHE", true); err != nil {
		t.Fatalf("printSearch: %v", err)
	}
	assertContains(t, out.String(), "Faith Hill", "4.18", "No", `1 songs match "BREATHE"`)

	out.Reset()
	if err := printSearch(out, testConfig(), "polka", false); err != nil {
		t.Fatalf("printSearch: %v", err)
	}
	assertContains(t, out.String(), noResults)
}

func TestPrintArtists(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printArtists(out, testConfig(), "", ""); err != nil {
		t.Fatalf("printArtists: %v", err)
	}
	assertContains(t, out.String(), enterArtistName)

	out.Reset()
	if err := printArtists(out, testConfig(), "zzz", ""); err != nil {
		t.Fatalf("printArtists: %v", err)
	}
	assertContains(t, out.String(), noArtistsFound)

	out.Reset()
	if err := printArtists(out, testConfig(), "EM", ""); err != nil {
		t.Fatalf("printArtists: %v", err)
	}
	assertContains(t, out.String(), "Eminem")

	out.Reset()
	if err := printArtists(out, testConfig(), "", "Eminem"); err != nil {
		t.Fatalf("printArtists: %v", err)
	}
	assertContains(t, out.String(), "Eminem (2 songs)", "## Most popular songs", "Stan", "84.50", "-4.24")
}

func TestPrintArtistProfileYAML(t *testing.T) {
	config := testConfig()
	config.Format = "yaml"

	out := new(bytes.Buffer)
	if err := printArtists(out, config, "", "Gorillaz"); err != nil {
		t.Fatalf("printArtists: %v", err)
	}
	assertContains(t, out.String(), "artist: Gorillaz", "songs: 1", "most_popular:")
}

func TestPrintTracks(t *testing.T) {
	config := testConfig()
	config.Years = "1999"

	out := new(bytes.Buffer)
	if err := printTracks(out, config, false); err != nil {
		t.Fatalf("printTracks: %v", err)
	}
	assertContains(t, out.String(), "Breathe", "blink-182", "Years: 1999 | Genres: all | 2 songs")
	if strings.Contains(out.String(), "Eminem") {
		t.Fatalf("Songs outside the year range should be left out:\n%s", out)
	}
}

func TestListGenres(t *testing.T) {
	config := testConfig()
	config.Years = "1999"
	config.GenreScope = "years"
	config.Genres = []string{"country"}

	out := new(bytes.Buffer)
	if err := listGenres(out, config); err != nil {
		t.Fatalf("listGenres: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected a header and 3 genres, got:\n%s", out)
	}
	assertContains(t, out.String(), "GENRE", "rock", "pop", "country")
	if strings.Contains(out.String(), "hip hop") {
		t.Fatalf("Year scope should leave out genres from other years:\n%s", out)
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "country") && !strings.HasSuffix(line, "yes") {
			t.Fatalf("country should be marked selected: %q", line)
		}
	}
}

func TestCheckData(t *testing.T) {
	out := new(bytes.Buffer)
	if err := checkData(out, testDataPath); err != nil {
		t.Fatalf("checkData: %v", err)
	}
	assertContains(t, out.String(), "Duplicates removed", "Without genre", "1999-2005")
}

func TestPrintTopN(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printTopN(out, testConfig()); err != nil {
		t.Fatalf("printTopN: %v", err)
	}
	assertContains(t, out.String(),
		"Songs: 7, Artists: 6, Genres: 5",
		"1. Eminem (2) - [hip hop]",
		"1. The Real Slim Shady - Eminem (2000, 86)",
		"## Top 5 Genres",
	)
}

func TestPrintTopArtistsAndSongs(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printTopArtists(out, testConfig(), 1); err != nil {
		t.Fatalf("printTopArtists: %v", err)
	}
	assertContains(t, out.String(), "Top artists", "Eminem", "Found 6 artists and 7 songs")

	out.Reset()
	if err := printTopSongs(out, testConfig(), 2); err != nil {
		t.Fatalf("printTopSongs: %v", err)
	}
	assertContains(t, out.String(), "The Real Slim Shady", "Stan")
	if strings.Contains(out.String(), "Breathe") {
		t.Fatalf("Only the top 2 songs should be printed:\n%s", out)
	}
}

func TestNewAndFadedArtists(t *testing.T) {
	config := testConfig()
	config.Years = "2005"

	out := new(bytes.Buffer)
	if err := printNewArtists(out, config, 0, 1); err != nil {
		t.Fatalf("printNewArtists: %v", err)
	}
	assertContains(t, out.String(), "Gorillaz", "Found 1 new artists in 2005")

	out.Reset()
	if err := printFadedArtists(out, config, 2, 10); err != nil {
		t.Fatalf("printFadedArtists: %v", err)
	}
	assertContains(t, out.String(), "Artists with no songs since 2005", "## Occasional", "Eminem")
}
