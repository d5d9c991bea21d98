package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVSource reads the dataset from a CSV file with a header row.
type CSVSource struct {
	name string
	open func() (io.ReadCloser, error)
}

// NewCSVFile returns a source reading the CSV file at path.
func NewCSVFile(path string) *CSVSource {
	return &CSVSource{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// NewCSVReader returns a source reading CSV from r. name is only used in
// error messages.
func NewCSVReader(name string, r io.Reader) *CSVSource {
	return &CSVSource{
		name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

func (s *CSVSource) ReadRecords() ([]RawRecord, error) {
	f, err := s.open()
	if err != nil {
		return nil, &DataSourceError{Source: s.name, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataSourceError{Source: s.name, Err: fmt.Errorf("empty file")}
	}
	if err != nil {
		return nil, &DataSourceError{Source: s.name, Err: fmt.Errorf("reading header: %w", err)}
	}

	columns := make(map[string]int, len(header))
	present := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := columns[h]; !dup {
			columns[h] = i
		}
		present[h] = true
	}
	if missing := MissingColumns(present); len(missing) > 0 {
		return nil, &DataSourceError{Source: s.name, Err: fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))}
	}

	var records []RawRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DataSourceError{Source: s.name, Err: err}
		}
		line, _ := reader.FieldPos(0)
		rec, err := ParseRow(func(col string) string {
			return strings.TrimSpace(row[columns[col]])
		})
		if err != nil {
			return nil, &DataSourceError{Source: s.name, Line: line, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseRow builds a RawRecord from cell values looked up by column name.
// Every required column must be parseable.
func ParseRow(cell func(col string) string) (RawRecord, error) {
	var rec RawRecord
	var err error

	rec.Artist = cell("artist")
	rec.Song = cell("song")
	rec.Genre = cell("genre")

	ints := []struct {
		col string
		dst *int
	}{
		{"year", &rec.Year},
		{"key", &rec.Key},
		{"mode", &rec.Mode},
	}
	for _, c := range ints {
		if *c.dst, err = parseInt(c.col, cell(c.col)); err != nil {
			return rec, err
		}
	}

	ms, err := parseFloat("duration_ms", cell("duration_ms"))
	if err != nil {
		return rec, err
	}
	rec.DurationMS = int64(ms)

	if rec.Explicit, err = strconv.ParseBool(cell("explicit")); err != nil {
		return rec, fmt.Errorf("column explicit: %w", err)
	}

	floats := []struct {
		col string
		dst *float64
	}{
		{"popularity", &rec.Popularity},
		{"danceability", &rec.Danceability},
		{"energy", &rec.Energy},
		{"loudness", &rec.Loudness},
		{"speechiness", &rec.Speechiness},
		{"acousticness", &rec.Acousticness},
		{"instrumentalness", &rec.Instrumentalness},
		{"liveness", &rec.Liveness},
		{"valence", &rec.Valence},
		{"tempo", &rec.Tempo},
	}
	for _, c := range floats {
		if *c.dst, err = parseFloat(c.col, cell(c.col)); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

func parseFloat(col, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return f, nil
}

// parseInt accepts integral floats like "2004.0" as well as plain integers.
func parseInt(col, v string) (int, error) {
	if i, err := strconv.Atoi(v); err == nil {
		return i, nil
	}
	f, err := parseFloat(col, v)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("column %s: %q is not a whole number", col, v)
	}
	return int(f), nil
}
