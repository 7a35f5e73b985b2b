package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory archive, used by tests.
const MemoryPath = ":memory:"

// archivePragmas are applied by the driver to every pooled connection, since
// SQLite keeps foreign_keys and busy_timeout per connection. The lesson
// archive is written by short CLI invocations that can overlap, so readers
// use WAL and writers wait on the lock instead of failing.
var archivePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
}

// dsn appends the archive pragmas to path as driver query parameters.
func dsn(path string) string {
	params := url.Values{}
	for _, p := range archivePragmas {
		params.Add("_pragma", p)
	}
	return path + "?" + params.Encode()
}

// OpenDB opens the lesson archive at path, creating its directory, applying
// pragmas and running migrations.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	// Every connection to ":memory:" opens its own empty database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying archive pragmas: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
