package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_journal.sql
var migration001 string

// migrations is the ordered list of schema versions.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

func schemaVersion(q interface {
	QueryRow(string, ...any) *sql.Row
}) (int, error) {
	var count int
	err := q.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: check schema version table: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	var v int
	if err := q.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("storage: read schema version: %w", err)
	}
	return v, nil
}

// applyMigrations runs every migration newer than the stored version.
func applyMigrations(db *sql.DB) error {
	current, err := schemaVersion(db)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("storage: apply migration %d: %w", m.version, err)
		}
	}
	return nil
}
