package repository

import (
	"database/sql"
	"time"
)

// nullableStringToValue converts a *string to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableStringToValue(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the int value.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func intPtr(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}

// formatTime stores timestamps as RFC3339 in UTC.
func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}
