package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/mattn/go-sqlite3"

	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/logger"
)

// Another process may hold a write lock on the file while we read it.
const (
	busyAttempts = 5
	busyDelay    = 200 * time.Millisecond
)

// ReadRecords returns every row of the songs table in rowid order.
func (s *Store) ReadRecords() ([]dataset.RawRecord, error) {
	quoted := make([]string, len(dataset.RequiredColumns))
	for i, c := range dataset.RequiredColumns {
		quoted[i] = `"` + c + `"`
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(quoted, ", "), SongsTable)
	var rows *sql.Rows
	err := retry.Do(
		func() error {
			var err error
			rows, err = s.db.Query(query)
			return err
		},
		retry.Attempts(busyAttempts),
		retry.Delay(busyDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			if isBusy(err) {
				logger.Warn("database busy, retrying", logger.String("source", s.path), logger.ErrorField(err))
				return true
			}
			return false
		}),
	)
	if err != nil {
		return nil, &dataset.DataSourceError{Source: s.path, Err: fmt.Errorf("querying songs: %w", err)}
	}
	defer rows.Close()

	index := make(map[string]int, len(dataset.RequiredColumns))
	for i, c := range dataset.RequiredColumns {
		index[c] = i
	}

	var records []dataset.RawRecord
	line := 0
	for rows.Next() {
		line++
		cells := make([]sql.NullString, len(dataset.RequiredColumns))
		dest := make([]interface{}, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &dataset.DataSourceError{Source: s.path, Line: line, Err: fmt.Errorf("scanning row: %w", err)}
		}

		rec, err := dataset.ParseRow(func(col string) string {
			return strings.TrimSpace(cells[index[col]].String)
		})
		if err != nil {
			return nil, &dataset.DataSourceError{Source: s.path, Line: line, Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &dataset.DataSourceError{Source: s.path, Err: err}
	}
	return records, nil
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
