package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeloapp/zelopet/pkg/types"
)

// VaccineRepo provides validated CRUD over the VaccineRecord table.
type VaccineRepo struct {
	s *Store
}

const vaccineColumns = "id, petId, name, appliedAt, nextDoseAt, vetName, notes, createdAt"

// ByPet returns the pet's vaccine records, most recently applied first.
func (r *VaccineRepo) ByPet(petID string) ([]types.VaccineRecord, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT "+vaccineColumns+" FROM VaccineRecord WHERE petId = ? ORDER BY appliedAt DESC",
		petID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing vaccine records: %w", err)
	}
	defer rows.Close()

	var records []types.VaccineRecord
	for rows.Next() {
		var v types.VaccineRecord
		var nextDoseAt, vetName, notes sql.NullString
		var createdAt string
		if err := rows.Scan(&v.ID, &v.PetID, &v.Name, &v.AppliedAt,
			&nextDoseAt, &vetName, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning vaccine record: %w", err)
		}
		v.NextDoseAt = strPtr(nextDoseAt)
		v.VetName = strPtr(vetName)
		v.Notes = strPtr(notes)
		v.CreatedAt, err = parseTime("createdAt", createdAt)
		if err != nil {
			return nil, err
		}
		records = append(records, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vaccine records: %w", err)
	}
	return records, nil
}

// Create validates the input, inserts one row, and returns the persisted
// record without a read-back.
func (r *VaccineRepo) Create(in types.VaccineRecordCreate) (*types.VaccineRecord, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	v := &types.VaccineRecord{
		ID:         newID(),
		PetID:      in.PetID,
		Name:       in.Name,
		AppliedAt:  in.AppliedAt,
		NextDoseAt: in.NextDoseAt,
		VetName:    in.VetName,
		Notes:      in.Notes,
		CreatedAt:  now,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO VaccineRecord ("+vaccineColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		v.ID, v.PetID, v.Name, v.AppliedAt, v.NextDoseAt, v.VetName, v.Notes,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting vaccine record: %w", err)
	}
	return v, nil
}

// Update applies a sparse patch; an all-nil patch is a no-op.
func (r *VaccineRepo) Update(id string, patch types.VaccineRecordPatch) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if err := types.Validate(patch); err != nil {
		return err
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.AppliedAt != nil {
		set("appliedAt", *patch.AppliedAt)
	}
	if patch.NextDoseAt != nil {
		set("nextDoseAt", *patch.NextDoseAt)
	}
	if patch.VetName != nil {
		set("vetName", *patch.VetName)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.s.db.Exec("UPDATE VaccineRecord SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating vaccine record %s: %w", id, err)
	}
	return nil
}

// Delete removes one vaccine record by id. Idempotent.
func (r *VaccineRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM VaccineRecord WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting vaccine record %s: %w", id, err)
	}
	return nil
}
