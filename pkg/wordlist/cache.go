package wordlist

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// CacheStore persists a compiled List to a sqlite file so repeated CLI
// invocations over the same multi-hundred-thousand-line Broda dictionary
// skip re-parsing it from scratch. Grounded on the teacher's
// internal/db.Database (sql.Open("sqlite3", ...), explicit schema
// creation) and cmd/crossgen/cmd/stats.go (open, query counts, report).
type CacheStore struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) a sqlite cache file at path and
// ensures its schema exists.
func OpenCache(path string) (*CacheStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping wordlist cache: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS words (
		text   TEXT NOT NULL,
		length INTEGER NOT NULL,
		score  INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize wordlist cache schema: %w", err)
	}

	return &CacheStore{db: db}, nil
}

// Close releases the underlying sqlite connection.
func (c *CacheStore) Close() error {
	return c.db.Close()
}

// Save replaces the cache's contents with list.
func (c *CacheStore) Save(list *List) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (text, length, score) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare cache insert: %w", err)
	}
	defer stmt.Close()

	for length, words := range list.ByLength {
		for _, w := range words {
			if _, err := stmt.Exec(w.Text, length, w.Score); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to cache word %q: %w", w.Text, err)
			}
		}
	}

	return tx.Commit()
}

// Load reads the entire cache back into a List.
func (c *CacheStore) Load() (*List, error) {
	rows, err := c.db.Query("SELECT text, length, score FROM words")
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	l := newList()
	for rows.Next() {
		var text string
		var length, score int
		if err := rows.Scan(&text, &length, &score); err != nil {
			return nil, fmt.Errorf("failed to scan cached word: %w", err)
		}
		l.ByLength[length] = append(l.ByLength[length], Word{Text: text, Score: score})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading cache rows: %w", err)
	}
	return l, nil
}

// LengthCounts reports the number of cached words per length, for the
// `crosssolve stats` command.
func (c *CacheStore) LengthCounts() (map[int]int, error) {
	rows, err := c.db.Query("SELECT length, COUNT(*) FROM words GROUP BY length ORDER BY length")
	if err != nil {
		return nil, fmt.Errorf("failed to query cache counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var length, n int
		if err := rows.Scan(&length, &n); err != nil {
			return nil, fmt.Errorf("failed to scan cache count: %w", err)
		}
		counts[length] = n
	}
	return counts, rows.Err()
}
