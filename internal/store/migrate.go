package store

import (
	"database/sql"
	"fmt"
	"time"
)

// migration is one schema version: a monotonically increasing version
// number and the DDL statements that bring the schema to it.
type migration struct {
	version    int
	statements []string
}

// CurrentVersion ensures the schema_migrations table exists and returns the
// highest applied version, or 0 if no migration has been applied.
func (s *Store) CurrentVersion() (int, error) {
	if _, err := s.db.Exec(createSchemaMigrations); err != nil {
		return 0, fmt.Errorf("ensuring schema_migrations: %w", err)
	}

	var version sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}

// Migrate applies all migrations with a version above the current one, in
// ascending order, one transaction per migration. A migration's version is
// recorded only after all of its statements succeed; on any failure the
// whole migration rolls back and the original error propagates. Already
// applied versions are never re-run, so Migrate is idempotent across
// restarts. SQLite DDL participates in transactions, so a failed migration
// leaves no partial schema behind.
func (s *Store) Migrate() error {
	current, err := s.CurrentVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := s.applyMigration(m); err != nil {
			return fmt.Errorf("applying migration %d: %w", m.version, err)
		}
	}
	return nil
}

func (s *Store) applyMigration(m migration) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range m.statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	// Recording the version is the last statement, after the DDL.
	_, err = tx.Exec(
		"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
		m.version, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
