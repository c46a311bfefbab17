// Package store implements the SQLite persistence layer for zelopet:
// schema migration, per-entity repositories, versioned JSON backup and
// restore, reset, and demo seeding. All access goes through a single
// Store constructed once at startup and injected into callers.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/zeloapp/zelopet/pkg/types"
)

// DatabaseFileName is the fixed name of the embedded database file inside
// the data directory.
const DatabaseFileName = "zelo-pet.db"

// Store owns the shared database handle for the process lifetime. The pool
// is limited to one connection, so overlapping callers are serialized by
// the engine's own transaction semantics.
type Store struct {
	db      *sql.DB
	dataDir string
}

// Open creates the data directory if needed, opens the database file, and
// turns on foreign-key enforcement. On any failure the handle is closed and
// nothing is cached, so a caller may retry from scratch.
func Open(cfg types.Config) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if info, err := os.Stat(dataDir); err == nil && !info.IsDir() {
		return nil, types.ErrDataDirIsFile
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DatabaseFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &Store{db: db, dataDir: dataDir}, nil
}

// Close releases the database handle. Close is idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	return nil
}

// DataDir returns the directory holding the database file and prefs.json.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Repository accessors. Each repository is a thin view over the shared
// handle; constructing one is free.

// Pets returns the Pet repository.
func (s *Store) Pets() *PetRepo { return &PetRepo{s} }

// Activities returns the ActivityTemplate/ActivityLog repository.
func (s *Store) Activities() *ActivityRepo { return &ActivityRepo{s} }

// Reminders returns the Reminder repository.
func (s *Store) Reminders() *ReminderRepo { return &ReminderRepo{s} }

// Vaccines returns the VaccineRecord repository.
func (s *Store) Vaccines() *VaccineRepo { return &VaccineRepo{s} }

// Tutors returns the Tutor repository.
func (s *Store) Tutors() *TutorRepo { return &TutorRepo{s} }

// Memories returns the Memory repository.
func (s *Store) Memories() *MemoryRepo { return &MemoryRepo{s} }

// newID generates a new UUID v7 for entity IDs.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// Row translation helpers. Boolean columns are stored as INTEGER 0/1;
// NULL and 0 both read back as false.

func toDBBool(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func fromDBBool(n sql.NullInt64) bool {
	return n.Valid && n.Int64 != 0
}

func nullBoolArg(b *bool) any {
	if b == nil {
		return nil
	}
	return toDBBool(*b)
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

// parseTime parses a stored RFC 3339 timestamp column.
func parseTime(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}
