// Versioned JSON backup: a complete, lossless snapshot of every domain
// table. Export reads raw rows; Import validates each row with the same
// typed constraints used on create before replaying the inserts inside one
// transaction.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zeloapp/zelopet/internal/prefs"
	"github.com/zeloapp/zelopet/pkg/types"
)

// ImportOptions controls Import behavior.
type ImportOptions struct {
	// KeepExisting skips the reset that normally precedes an import. The
	// default (false) matches the app's overwrite semantics: wipe all
	// tables and clear the cached preference keys, then replay the backup.
	KeepExisting bool
}

// Export snapshots every domain table into a Backup payload. Rows are read
// with SELECT * so every column survives untransformed.
func (s *Store) Export() (*types.Backup, error) {
	data := make(map[string][]map[string]any, len(types.TablesParentFirst))
	for _, table := range types.TablesParentFirst {
		rows, err := s.tableRows(table)
		if err != nil {
			return nil, err
		}
		data[table] = rows
	}

	return &types.Backup{
		Version:    types.BackupVersion,
		ExportedAt: time.Now().UTC(),
		Data:       data,
	}, nil
}

// ExportJSON marshals the Export snapshot as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	backup, err := s.Export()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling backup: %w", err)
	}
	return out, nil
}

// tableRows reads all rows of one table into column-keyed maps.
func (s *Store) tableRows(table string) ([]map[string]any, error) {
	rows, err := s.db.Query("SELECT * FROM " + table)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns for %s: %w", table, err)
	}

	records := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		rec := make(map[string]any, len(cols))
		for i, col := range cols {
			rec[col] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return records, nil
}

// Import parses a backup payload and replays its rows. Unless KeepExisting
// is set it first runs the full Reset: wipe all domain tables and clear the
// cached preference keys, so a stale active-pet selection cannot outlive the
// restore. All inserts run inside one transaction in parent-before-child
// table order; any failure rolls the whole import back, so a partial import
// is never observable.
func (s *Store) Import(payload []byte, p *prefs.Store, opts ImportOptions) error {
	var backup types.Backup
	if err := json.Unmarshal(payload, &backup); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidBackup, err)
	}
	if backup.Data == nil {
		return fmt.Errorf("%w: missing data object", types.ErrInvalidBackup)
	}

	if !opts.KeepExisting {
		if err := s.Reset(p); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range types.TablesParentFirst {
		if err := importTable(tx, table, backup.Data[table]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// importTable routes rows to the typed importer for the table. Table names
// outside the known set are not present in TablesParentFirst and are simply
// ignored by Import.
func importTable(tx *sql.Tx, table string, rows []map[string]any) error {
	switch table {
	case types.TablePets:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO Pet ("+petColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			rows, func(r *petRow) []any {
				return []any{r.ID, r.Name, r.Species, r.Breed, r.Sex, r.BirthDate,
					r.WeightKg, r.Neutered, r.PhotoURI, r.CreatedAt}
			})
	case types.TableActivityTemplates:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO ActivityTemplate ("+templateColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			rows, func(r *templateRow) []any {
				return []any{r.ID, r.PetID, r.Title, r.Icon, r.TargetCountPerDay,
					r.IsTimer, r.SortOrder}
			})
	case types.TableActivityLogs:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO ActivityLog ("+logColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			rows, func(r *logRow) []any {
				return []any{r.ID, r.PetID, r.TemplateID, r.Date, r.CountIncrement,
					r.DurationSec, r.CreatedAt}
			})
	case types.TableReminders:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO Reminder ("+reminderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			rows, func(r *reminderRow) []any {
				return []any{r.ID, r.PetID, r.Title, r.Type, r.Datetime, r.Notes, r.CreatedAt}
			})
	case types.TableVaccineRecords:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO VaccineRecord ("+vaccineColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			rows, func(r *vaccineRow) []any {
				return []any{r.ID, r.PetID, r.Name, r.AppliedAt, r.NextDoseAt,
					r.VetName, r.Notes, r.CreatedAt}
			})
	case types.TableTutors:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO Tutor ("+tutorColumns+") VALUES (?, ?, ?, ?, ?)",
			rows, func(r *tutorRow) []any {
				return []any{r.ID, r.PetID, r.Name, r.Role, r.CreatedAt}
			})
	case types.TableMemories:
		return importRows(tx, table,
			"INSERT OR REPLACE INTO Memory ("+memoryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			rows, func(r *memoryRow) []any {
				return []any{r.ID, r.PetID, r.Title, r.Text, r.MemoryDate,
					r.PhotoURI, r.CreatedAt}
			})
	default:
		return fmt.Errorf("%w: unknown table %q", types.ErrInvalidBackup, table)
	}
}

// importRows decodes each raw row into its typed form, validates it, and
// executes the insert. The first failure aborts the import.
func importRows[T any](tx *sql.Tx, table, insertSQL string, rows []map[string]any, args func(*T) []any) error {
	for _, raw := range rows {
		row, err := decodeRow[T](table, raw)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(insertSQL, args(row)...); err != nil {
			return fmt.Errorf("importing %s row: %w", table, err)
		}
	}
	return nil
}

// decodeRow round-trips a column-keyed map through JSON into the typed row
// struct, then applies the same validation used on create.
func decodeRow[T any](table string, raw map[string]any) (*T, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s row: %s", types.ErrInvalidBackup, table, err)
	}
	var row T
	if err := json.Unmarshal(buf, &row); err != nil {
		return nil, fmt.Errorf("%w: decoding %s row: %s", types.ErrInvalidBackup, table, err)
	}
	if err := types.Validate(&row); err != nil {
		return nil, fmt.Errorf("%s row: %w", table, err)
	}
	return &row, nil
}

// Typed row forms of the backup payload. Field tags match column names;
// boolean columns stay in their stored 0/1 integer form.

type petRow struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Species   string   `json:"species" validate:"required"`
	Breed     *string  `json:"breed"`
	Sex       *string  `json:"sex"`
	BirthDate *string  `json:"birthDate"`
	WeightKg  *float64 `json:"weightKg" validate:"omitnil,gte=0"`
	Neutered  *int     `json:"neutered" validate:"omitnil,oneof=0 1"`
	PhotoURI  *string  `json:"photoUri"`
	CreatedAt string   `json:"createdAt" validate:"required"`
}

type templateRow struct {
	ID                string  `json:"id" validate:"required"`
	PetID             string  `json:"petId" validate:"required"`
	Title             string  `json:"title" validate:"required"`
	Icon              *string `json:"icon"`
	TargetCountPerDay *int    `json:"targetCountPerDay" validate:"omitnil,gt=0"`
	IsTimer           *int    `json:"isTimer" validate:"omitnil,oneof=0 1"`
	SortOrder         *int    `json:"sortOrder"`
}

type logRow struct {
	ID             string `json:"id" validate:"required"`
	PetID          string `json:"petId" validate:"required"`
	TemplateID     string `json:"templateId" validate:"required"`
	Date           string `json:"date" validate:"required"`
	CountIncrement int    `json:"countIncrement" validate:"required,gte=1"`
	DurationSec    *int   `json:"durationSec" validate:"omitnil,gte=0"`
	CreatedAt      string `json:"createdAt" validate:"required"`
}

type reminderRow struct {
	ID        string  `json:"id" validate:"required"`
	PetID     string  `json:"petId" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Datetime  string  `json:"datetime" validate:"required"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"createdAt" validate:"required"`
}

type vaccineRow struct {
	ID         string  `json:"id" validate:"required"`
	PetID      string  `json:"petId" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	AppliedAt  string  `json:"appliedAt" validate:"required"`
	NextDoseAt *string `json:"nextDoseAt"`
	VetName    *string `json:"vetName"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"createdAt" validate:"required"`
}

type tutorRow struct {
	ID        string  `json:"id" validate:"required"`
	PetID     string  `json:"petId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Role      *string `json:"role"`
	CreatedAt string  `json:"createdAt" validate:"required"`
}

type memoryRow struct {
	ID         string  `json:"id" validate:"required"`
	PetID      string  `json:"petId" validate:"required"`
	Title      *string `json:"title"`
	Text       string  `json:"text" validate:"required"`
	MemoryDate string  `json:"memoryDate" validate:"required"`
	PhotoURI   *string `json:"photoUri"`
	CreatedAt  string  `json:"createdAt" validate:"required"`
}
