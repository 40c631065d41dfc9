// Package terms is the exact-match dictionary. Keys are normalized
// lowercase; lookups probe a small set of deterministic variants and
// re-apply the input's capitalization to the stored value.
package terms

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	_ "modernc.org/sqlite"
)

// Store persists dictionary terms in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the dictionary database at path and seeds it with
// the built-in term table when empty.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	return s, nil
}

// OpenInMemory opens a transient store, used in tests.
func OpenInMemory() (*Store, error) {
	return Open(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS terms (
		key              TEXT PRIMARY KEY,
		value            TEXT NOT NULL,
		original_casing  TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM terms`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO terms (key, value, original_casing) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range seedTerms {
		if _, err := stmt.Exec(strings.ToLower(t.English), t.Zulu, t.English); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// AddTerm inserts a new normalized entry; duplicates overwrite.
func (s *Store) AddTerm(ctx context.Context, english, translation string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO terms (key, value, original_casing) VALUES (?, ?, ?)`,
		strings.ToLower(strings.TrimSpace(english)), translation, english)
	if err != nil {
		return fmt.Errorf("add term: %w", err)
	}
	return nil
}

// Count returns the number of stored terms.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM terms`).Scan(&n)
	return n, err
}

// ExactMatch probes the store with normalized variants of text, in
// generation order, and returns the first hit with the input's
// capitalization re-applied. A miss returns ok=false, never an error.
func (s *Store) ExactMatch(ctx context.Context, text string) (string, bool, error) {
	if strings.TrimSpace(text) == "" {
		return "", false, nil
	}

	for _, variant := range variants(text) {
		var value string
		err := s.db.QueryRowContext(ctx, `SELECT value FROM terms WHERE key = ?`, variant).Scan(&value)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("lookup '%s': %w", variant, err)
		}
		return applyCasing(text, value), true, nil
	}

	return "", false, nil
}

// variants generates the deterministic probe set: the text as-is, ampersand
// expansions, periods removed, collapsed double spaces, and each of those
// with a leading "the " stripped.
func variants(text string) []string {
	lower := strings.TrimSpace(strings.ToLower(text))

	vs := []string{
		lower,
		strings.ReplaceAll(lower, "&", "and"),
		strings.ReplaceAll(lower, "&", " and "),
		strings.ReplaceAll(lower, ".", ""),
		strings.ReplaceAll(lower, "  ", " "),
	}

	for _, v := range vs[:len(vs):len(vs)] {
		if strings.HasPrefix(v, "the ") {
			vs = append(vs, strings.TrimSpace(v[4:]))
		}
	}

	return vs
}

// applyCasing mirrors the input's capitalization onto the stored value:
// all-uppercase input uppercases the whole value, a leading capital
// uppercases only the first rune.
func applyCasing(input, value string) string {
	if value == "" {
		return value
	}
	if isUpper(input) {
		return strings.ToUpper(value)
	}
	first := []rune(input)[0]
	if unicode.IsUpper(first) {
		runes := []rune(value)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return value
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
