package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS lesson_sequences (
		id           TEXT PRIMARY KEY,
		sport        TEXT NOT NULL,
		grade        TEXT NOT NULL,
		lesson_count INTEGER NOT NULL CHECK(lesson_count BETWEEN 2 AND 5),
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS lesson_archive (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		sport         TEXT NOT NULL,
		grade         TEXT NOT NULL,
		engine        TEXT NOT NULL DEFAULT 'modular'
		              CHECK(engine IN ('modular','activity')),
		structure_id  TEXT NOT NULL DEFAULT '',
		activity_id   TEXT NOT NULL DEFAULT '',
		score         INTEGER NOT NULL DEFAULT 0,
		sequence_id   TEXT REFERENCES lesson_sequences(id) ON DELETE CASCADE,
		lesson_number INTEGER CHECK(lesson_number IS NULL OR lesson_number BETWEEN 1 AND 5),
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lesson_archive_created ON lesson_archive(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_lesson_archive_sequence ON lesson_archive(sequence_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_lesson_archive_sequence_number
		ON lesson_archive(sequence_id, lesson_number) WHERE sequence_id IS NOT NULL`,

	// Rendered card body, kept so history can show what was saved.
	`ALTER TABLE lesson_archive ADD COLUMN body TEXT NOT NULL DEFAULT ''`,
}
