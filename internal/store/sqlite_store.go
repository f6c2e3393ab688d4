package store

import (
	"database/sql"
	"encoding/json"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/pkg/errors"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
)

// SQLiteStore is the SQLite-backed wordbook.
// Uses ncruces/go-sqlite3/driver which provides a database/sql interface.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema holds one row per phrase. A Literal fills literal; a Tagged entry
// fills forms with a JSON object of tag -> form.
const schema = `
CREATE TABLE IF NOT EXISTS wordbook (
    phrase TEXT PRIMARY KEY,
    literal TEXT,
    forms TEXT
);
`

// NewSQLiteStore creates a new in-memory SQLite store.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:")
}

// NewSQLiteStoreWithDSN creates a store with a specific data source name.
// Use ":memory:" for in-memory or a file path for persistent storage.
func NewSQLiteStoreWithDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// an in-memory database lives as long as its single connection
	db.SetMaxOpenConns(1)

	// Create schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Load reads every row.
func (s *SQLiteStore) Load() (map[string]lexicon.Replacement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`SELECT phrase, literal, forms FROM wordbook ORDER BY phrase`)
	if err != nil {
		return nil, errors.Wrap(err, "query wordbook")
	}
	defer rows.Close()

	entries := make(map[string]lexicon.Replacement)
	for rows.Next() {
		var phrase string
		var literal, forms sql.NullString

		if err := rows.Scan(&phrase, &literal, &forms); err != nil {
			return nil, errors.Wrap(err, "scan wordbook row")
		}

		if forms.Valid {
			var table map[string]string
			if err := json.Unmarshal([]byte(forms.String), &table); err != nil {
				return nil, errors.Wrapf(err, "decode forms of %q", phrase)
			}
			entries[phrase] = lexicon.NewTagged(table)
			continue
		}
		entries[phrase] = lexicon.NewLiteral(literal.String)
	}
	return entries, errors.Wrap(rows.Err(), "iterate wordbook")
}

// Save replaces every row in one transaction.
func (s *SQLiteStore) Save(entries map[string]lexicon.Replacement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM wordbook`); err != nil {
		return errors.Wrap(err, "clear wordbook")
	}

	stmt, err := tx.Prepare(`INSERT INTO wordbook (phrase, literal, forms) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for phrase, r := range entries {
		var literal, forms sql.NullString
		if r.IsTagged() {
			data, err := json.Marshal(r.Forms())
			if err != nil {
				return errors.Wrapf(err, "encode forms of %q", phrase)
			}
			forms = sql.NullString{String: string(data), Valid: true}
		} else {
			literal = sql.NullString{String: r.Literal(), Valid: true}
		}
		if _, err := stmt.Exec(phrase, literal, forms); err != nil {
			return errors.Wrapf(err, "insert %q", phrase)
		}
	}

	return errors.Wrap(tx.Commit(), "commit")
}
