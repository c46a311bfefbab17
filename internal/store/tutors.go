package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeloapp/zelopet/pkg/types"
)

// TutorRepo provides validated CRUD over the Tutor table.
type TutorRepo struct {
	s *Store
}

const tutorColumns = "id, petId, name, role, createdAt"

// ByPet returns the pet's tutors in creation order.
func (r *TutorRepo) ByPet(petID string) ([]types.Tutor, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT "+tutorColumns+" FROM Tutor WHERE petId = ? ORDER BY createdAt",
		petID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tutors: %w", err)
	}
	defer rows.Close()

	var tutors []types.Tutor
	for rows.Next() {
		var t types.Tutor
		var role sql.NullString
		var createdAt string
		if err := rows.Scan(&t.ID, &t.PetID, &t.Name, &role, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning tutor: %w", err)
		}
		t.Role = strPtr(role)
		t.CreatedAt, err = parseTime("createdAt", createdAt)
		if err != nil {
			return nil, err
		}
		tutors = append(tutors, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tutors: %w", err)
	}
	return tutors, nil
}

// Create validates the input, inserts one row, and returns the persisted
// tutor without a read-back.
func (r *TutorRepo) Create(in types.TutorCreate) (*types.Tutor, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	t := &types.Tutor{
		ID:        newID(),
		PetID:     in.PetID,
		Name:      in.Name,
		Role:      in.Role,
		CreatedAt: now,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO Tutor ("+tutorColumns+") VALUES (?, ?, ?, ?, ?)",
		t.ID, t.PetID, t.Name, t.Role, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting tutor: %w", err)
	}
	return t, nil
}

// Update applies a sparse patch; an all-nil patch is a no-op.
func (r *TutorRepo) Update(id string, patch types.TutorPatch) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if err := types.Validate(patch); err != nil {
		return err
	}

	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *patch.Role)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.s.db.Exec("UPDATE Tutor SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating tutor %s: %w", id, err)
	}
	return nil
}

// Delete removes one tutor by id. Idempotent.
func (r *TutorRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM Tutor WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting tutor %s: %w", id, err)
	}
	return nil
}
