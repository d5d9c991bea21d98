package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"

	"github.com/ademuri/hits-dashboard/internal/dataset"
	_ "github.com/mattn/go-sqlite3"
)

// SongsTable is the table a dataset database must carry.
const SongsTable = "songs"

// Store reads the dataset from a SQLite file. The file is opened read-only;
// nothing is ever written back.
type Store struct {
	path string
	db   *sql.DB
}

func New(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, &dataset.DataSourceError{Source: dbPath, Err: err}
	}

	dsn := (&url.URL{Scheme: "file", Opaque: dbPath, RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &dataset.DataSourceError{Source: dbPath, Err: fmt.Errorf("opening database: %w", err)}
	}

	s := &Store{path: dbPath, db: db}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Open is New with a dataset.Source result, for dataset.OpenSource.
func Open(dbPath string) (dataset.Source, error) {
	return New(dbPath)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) checkSchema() error {
	exists, err := tableExists(s.db, SongsTable)
	if err != nil {
		return &dataset.DataSourceError{Source: s.path, Err: err}
	}
	if !exists {
		return &dataset.DataSourceError{Source: s.path, Err: fmt.Errorf("no %q table", SongsTable)}
	}

	columns, err := tableColumns(s.db, SongsTable)
	if err != nil {
		return &dataset.DataSourceError{Source: s.path, Err: err}
	}
	if missing := dataset.MissingColumns(columns); len(missing) > 0 {
		return &dataset.DataSourceError{Source: s.path, Err: fmt.Errorf("table %s is missing required columns: %v", SongsTable, missing)}
	}
	return nil
}

func tableExists(db *sql.DB, table string) (bool, error) {
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking table %s: %w", table, err)
	}
	return true, nil
}

// tableColumns returns the lower-cased column names of tableName.
func tableColumns(db *sql.DB, tableName string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", tableName))
	if err != nil {
		return nil, fmt.Errorf("reading columns of %s: %w", tableName, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt_value interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt_value, &pk); err != nil {
			return nil, err
		}
		columns[lower(name)] = true
	}
	return columns, rows.Err()
}
