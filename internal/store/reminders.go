package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeloapp/zelopet/pkg/types"
)

// ReminderRepo provides validated CRUD over the Reminder table.
type ReminderRepo struct {
	s *Store
}

const reminderColumns = "id, petId, title, type, datetime, notes, createdAt"

// ByPet returns the pet's reminders ordered by datetime, soonest first.
func (r *ReminderRepo) ByPet(petID string) ([]types.Reminder, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT "+reminderColumns+" FROM Reminder WHERE petId = ? ORDER BY datetime ASC",
		petID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []types.Reminder
	for rows.Next() {
		var rem types.Reminder
		var notes sql.NullString
		var datetime, createdAt string
		if err := rows.Scan(&rem.ID, &rem.PetID, &rem.Title, &rem.Type,
			&datetime, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		rem.Notes = strPtr(notes)
		rem.Datetime, err = parseTime("datetime", datetime)
		if err != nil {
			return nil, err
		}
		rem.CreatedAt, err = parseTime("createdAt", createdAt)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return reminders, nil
}

// Create validates the input, inserts one row, and returns the persisted
// reminder without a read-back.
func (r *ReminderRepo) Create(in types.ReminderCreate) (*types.Reminder, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	rem := &types.Reminder{
		ID:        newID(),
		PetID:     in.PetID,
		Title:     in.Title,
		Type:      in.Type,
		Datetime:  in.Datetime.UTC(),
		Notes:     in.Notes,
		CreatedAt: now,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO Reminder ("+reminderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		rem.ID, rem.PetID, rem.Title, rem.Type,
		rem.Datetime.Format(time.RFC3339), rem.Notes, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting reminder: %w", err)
	}
	return rem, nil
}

// Update applies a sparse patch; an all-nil patch is a no-op.
func (r *ReminderRepo) Update(id string, patch types.ReminderPatch) error {
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
	if patch.Type != nil {
		set("type", *patch.Type)
	}
	if patch.Datetime != nil {
		set("datetime", patch.Datetime.UTC().Format(time.RFC3339))
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.s.db.Exec("UPDATE Reminder SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating reminder %s: %w", id, err)
	}
	return nil
}

// Delete removes one reminder by id. Idempotent.
func (r *ReminderRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM Reminder WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting reminder %s: %w", id, err)
	}
	return nil
}
