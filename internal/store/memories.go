package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeloapp/zelopet/pkg/types"
)

// MemoryRepo provides validated CRUD over the Memory table.
type MemoryRepo struct {
	s *Store
}

const memoryColumns = "id, petId, title, text, memoryDate, photoUri, createdAt"

// ByPet returns the pet's memories, most recent memoryDate first.
func (r *MemoryRepo) ByPet(petID string) ([]types.Memory, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT "+memoryColumns+" FROM Memory WHERE petId = ? ORDER BY memoryDate DESC",
		petID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing memories: %w", err)
	}
	defer rows.Close()

	var memories []types.Memory
	for rows.Next() {
		var m types.Memory
		var title, photoURI sql.NullString
		var createdAt string
		if err := rows.Scan(&m.ID, &m.PetID, &title, &m.Text, &m.MemoryDate,
			&photoURI, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning memory: %w", err)
		}
		m.Title = strPtr(title)
		m.PhotoURI = strPtr(photoURI)
		m.CreatedAt, err = parseTime("createdAt", createdAt)
		if err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating memories: %w", err)
	}
	return memories, nil
}

// Create validates the input, inserts one row, and returns the persisted
// memory without a read-back.
func (r *MemoryRepo) Create(in types.MemoryCreate) (*types.Memory, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	m := &types.Memory{
		ID:         newID(),
		PetID:      in.PetID,
		Title:      in.Title,
		Text:       in.Text,
		MemoryDate: in.MemoryDate,
		PhotoURI:   in.PhotoURI,
		CreatedAt:  now,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO Memory ("+memoryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.PetID, m.Title, m.Text, m.MemoryDate, m.PhotoURI,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting memory: %w", err)
	}
	return m, nil
}

// Update applies a sparse patch; an all-nil patch is a no-op.
func (r *MemoryRepo) Update(id string, patch types.MemoryPatch) error {
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

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Text != nil {
		set("text", *patch.Text)
	}
	if patch.MemoryDate != nil {
		set("memoryDate", *patch.MemoryDate)
	}
	if patch.PhotoURI != nil {
		set("photoUri", *patch.PhotoURI)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.s.db.Exec("UPDATE Memory SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating memory %s: %w", id, err)
	}
	return nil
}

// Delete removes one memory by id. Idempotent.
func (r *MemoryRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM Memory WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting memory %s: %w", id, err)
	}
	return nil
}
