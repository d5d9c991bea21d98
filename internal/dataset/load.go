package dataset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ademuri/hits-dashboard/internal/logger"
)

// EmptyGenreMarker is what the dataset writes in the genre column for songs
// with no recorded genre.
const EmptyGenreMarker = "set()"

// RequiredColumns are the columns every source must provide.
var RequiredColumns = []string{
	"artist", "song", "genre", "year", "popularity", "duration_ms", "explicit",
	"danceability", "energy", "loudness", "valence", "tempo", "acousticness",
	"instrumentalness", "liveness", "speechiness", "key", "mode",
}

// RawRecord is a source row before normalization. Genre is still the
// unsplit column value.
type RawRecord struct {
	Track
	Genre string
}

// Source produces the raw rows of the dataset.
type Source interface {
	ReadRecords() ([]RawRecord, error)
}

// DataSourceError reports a source that is missing, unreadable or does not
// match the expected schema. Nothing is loaded when it is returned.
type DataSourceError struct {
	Source string
	// Zero when the problem isn't tied to a row.
	Line int
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("data source %s, line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// MissingColumns returns the required columns absent from present, in
// RequiredColumns order.
func MissingColumns(present map[string]bool) []string {
	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Load reads every record from src and normalizes them.
func Load(src Source) ([]Track, error) {
	tracks, _, err := LoadWithStats(src)
	return tracks, err
}

// LoadWithStats is Load that also reports what normalization dropped.
func LoadWithStats(src Source) ([]Track, NormalizeStats, error) {
	records, err := src.ReadRecords()
	if err != nil {
		return nil, NormalizeStats{}, err
	}
	tracks, stats := Normalize(records)
	logger.Info("loaded dataset",
		logger.Int("raw_rows", stats.Raw),
		logger.Int("duplicates_removed", stats.Duplicates),
		logger.Int("without_genre", stats.NoGenre),
		logger.Int("tracks", len(tracks)))
	return tracks, stats, nil
}

// OpenSource picks a Source for path by extension: SQLite files go through
// openDB, everything else is read as CSV.
func OpenSource(path string, openDB func(string) (Source, error)) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		if openDB == nil {
			return nil, &DataSourceError{Source: path, Err: fmt.Errorf("no SQLite reader configured")}
		}
		return openDB(path)
	default:
		return NewCSVFile(path), nil
	}
}

// NormalizeStats counts what Normalize dropped.
type NormalizeStats struct {
	Raw        int
	Duplicates int
	NoGenre    int
}

type songKey struct {
	artist, song string
}

// Normalize deduplicates records on (artist, song), keeping the most
// popular row (the earliest one on ties), drops rows without a genre,
// splits the genre column and derives the duration in minutes. Tracks keep
// the position of the first row seen for their (artist, song) pair.
func Normalize(records []RawRecord) ([]Track, NormalizeStats) {
	stats := NormalizeStats{Raw: len(records)}

	best := make(map[songKey]int, len(records))
	var order []songKey
	for i := range records {
		k := songKey{records[i].Artist, records[i].Song}
		j, seen := best[k]
		if !seen {
			best[k] = i
			order = append(order, k)
			continue
		}
		stats.Duplicates++
		if records[i].Popularity > records[j].Popularity {
			best[k] = i
		}
	}

	tracks := make([]Track, 0, len(order))
	for _, k := range order {
		rec := records[best[k]]
		if strings.TrimSpace(rec.Genre) == EmptyGenreMarker {
			stats.NoGenre++
			continue
		}
		genres := SplitGenres(rec.Genre)
		if len(genres) == 0 {
			stats.NoGenre++
			continue
		}
		t := rec.Track
		t.Genres = genres
		t.DurationMinutes = float64(t.DurationMS) / 60000
		tracks = append(tracks, t)
	}
	return tracks, stats
}

var genreSeparator = regexp.MustCompile(`[;,]`)

// SplitGenres splits a genre column value on commas and semicolons,
// trimming each piece and dropping empty ones.
func SplitGenres(raw string) []string {
	parts := genreSeparator.Split(raw, -1)
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == EmptyGenreMarker {
			continue
		}
		genres = append(genres, p)
	}
	return genres
}
