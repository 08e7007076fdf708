// Package tmcache provides a sqlite-backed translation memory.
package tmcache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS memory (
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	msgid       TEXT NOT NULL,
	msgstr      TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	PRIMARY KEY (source_lang, target_lang, msgid)
);
`

// Cache is a translation memory keyed by language pair and source text.
// One Cache may serve many runs; entries never expire.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the translation memory at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize translation memory: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (v *Cache) Close() error {
	return v.db.Close()
}

// Lookup returns the remembered translation for msgid, if any.
func (v *Cache) Lookup(sourceLang, targetLang, msgid string) (string, bool, error) {
	var msgstr string
	err := v.db.QueryRow(
		`SELECT msgstr FROM memory WHERE source_lang = ? AND target_lang = ? AND msgid = ?`,
		sourceLang, targetLang, msgid,
	).Scan(&msgstr)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("translation memory lookup failed: %w", err)
	}
	return msgstr, true, nil
}

// Store remembers a translation, replacing any previous one for the same
// language pair and msgid.
func (v *Cache) Store(sourceLang, targetLang, msgid, msgstr string) error {
	_, err := v.db.Exec(
		`INSERT INTO memory (source_lang, target_lang, msgid, msgstr, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (source_lang, target_lang, msgid) DO UPDATE SET msgstr = excluded.msgstr`,
		sourceLang, targetLang, msgid, msgstr, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("translation memory store failed: %w", err)
	}
	return nil
}

// Size returns the number of remembered translations.
func (v *Cache) Size() (int, error) {
	var n int
	if err := v.db.QueryRow(`SELECT COUNT(*) FROM memory`).Scan(&n); err != nil {
		return 0, fmt.Errorf("translation memory count failed: %w", err)
	}
	return n, nil
}
