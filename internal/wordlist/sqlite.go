package wordlist

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Schema for a compiled word database.
const schema = `
CREATE TABLE IF NOT EXISTS words (
    dictionary  TEXT NOT NULL,
    rank        INTEGER NOT NULL,
    word        TEXT NOT NULL,
    PRIMARY KEY (dictionary, rank)
);

CREATE INDEX IF NOT EXISTS idx_words_dictionary ON words(dictionary, rank);
`

// SQLiteSource reads dictionaries from a compiled word database
// (see the "passrank compile" command).
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens a compiled word database in read-only use.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open word database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open word database: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// Load implements Source.
func (s *SQLiteSource) Load(name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT word FROM words WHERE dictionary = ? ORDER BY rank`, name)
	if err != nil {
		return nil, fmt.Errorf("query dictionary %q: %w", name, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan dictionary %q: %w", name, err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %q: %w", name, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no dictionary %q in word database", name)
	}
	return words, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Compile writes the dictionaries reachable through src under the
// given names into a word database at path, replacing any previous
// contents of those dictionaries.
func Compile(path string, src Source, names []string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("create word database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply word database schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin compile transaction: %w", err)
	}
	defer tx.Rollback()

	insert, err := tx.Prepare(
		`INSERT INTO words (dictionary, rank, word) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, name := range names {
		words, err := src.Load(name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM words WHERE dictionary = ?`, name); err != nil {
			return fmt.Errorf("clear dictionary %q: %w", name, err)
		}
		// Re-rank through NewRanked so duplicates collapse the same
		// way they do on the direct load path.
		ranked := NewRanked(name, words)
		ordered := make([]string, ranked.Len())
		for w, r := range ranked.ranks {
			ordered[r-1] = w
		}
		for i, w := range ordered {
			if _, err := insert.Exec(name, i+1, w); err != nil {
				return fmt.Errorf("insert word %q/%d: %w", name, i+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit word database: %w", err)
	}
	return nil
}
