// ActivityTemplate and ActivityLog repository. Templates are the checklist
// definitions; logs are an append-only ledger of completions. Daily
// progress is always derived by summing countIncrement, never stored.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeloapp/zelopet/pkg/types"
)

// ActivityRepo provides validated CRUD for templates and append/query for
// logs.
type ActivityRepo struct {
	s *Store
}

const templateColumns = "id, petId, title, icon, targetCountPerDay, isTimer, sortOrder"
const logColumns = "id, petId, templateId, date, countIncrement, durationSec, createdAt"

// TemplatesByPet returns the pet's templates ordered by sortOrder.
func (r *ActivityRepo) TemplatesByPet(petID string) ([]types.ActivityTemplate, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT "+templateColumns+" FROM ActivityTemplate WHERE petId = ? ORDER BY sortOrder ASC",
		petID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []types.ActivityTemplate
	for rows.Next() {
		var t types.ActivityTemplate
		var icon sql.NullString
		var target, sortOrder, isTimer sql.NullInt64
		if err := rows.Scan(&t.ID, &t.PetID, &t.Title, &icon, &target, &isTimer, &sortOrder); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		t.Icon = strPtr(icon)
		t.TargetCountPerDay = intPtr(target)
		t.IsTimer = fromDBBool(isTimer)
		t.SortOrder = intPtr(sortOrder)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return templates, nil
}

// CreateTemplate validates the input, inserts one row, and returns the
// persisted template without a read-back.
func (r *ActivityRepo) CreateTemplate(in types.ActivityTemplateCreate) (*types.ActivityTemplate, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	t := &types.ActivityTemplate{
		ID:                newID(),
		PetID:             in.PetID,
		Title:             in.Title,
		Icon:              in.Icon,
		TargetCountPerDay: in.TargetCountPerDay,
		IsTimer:           in.IsTimer != nil && *in.IsTimer,
		SortOrder:         in.SortOrder,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO ActivityTemplate ("+templateColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.PetID, t.Title, t.Icon, t.TargetCountPerDay,
		nullBoolArg(in.IsTimer), t.SortOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting template: %w", err)
	}
	return t, nil
}

// UpdateTemplate applies a sparse patch; an all-nil patch is a no-op.
func (r *ActivityRepo) UpdateTemplate(id string, patch types.ActivityTemplatePatch) error {
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
	if patch.Icon != nil {
		set("icon", *patch.Icon)
	}
	if patch.TargetCountPerDay != nil {
		set("targetCountPerDay", *patch.TargetCountPerDay)
	}
	if patch.IsTimer != nil {
		set("isTimer", toDBBool(*patch.IsTimer))
	}
	if patch.SortOrder != nil {
		set("sortOrder", *patch.SortOrder)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.s.db.Exec("UPDATE ActivityTemplate SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating template %s: %w", id, err)
	}
	return nil
}

// DeleteTemplate removes one template by id. Idempotent.
func (r *ActivityRepo) DeleteTemplate(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM ActivityTemplate WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting template %s: %w", id, err)
	}
	return nil
}

// DeleteTemplatesByPet removes all of a pet's templates.
func (r *ActivityRepo) DeleteTemplatesByPet(petID string) error {
	if petID == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM ActivityTemplate WHERE petId = ?", petID); err != nil {
		return fmt.Errorf("deleting templates for pet %s: %w", petID, err)
	}
	return nil
}

// Log appends one completion record. Logs are immutable; there is no update
// or targeted delete in the normal flow.
func (r *ActivityRepo) Log(in types.ActivityLogCreate) (*types.ActivityLog, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	log := &types.ActivityLog{
		ID:             newID(),
		PetID:          in.PetID,
		TemplateID:     in.TemplateID,
		Date:           in.Date,
		CountIncrement: in.CountIncrement,
		DurationSec:    in.DurationSec,
		CreatedAt:      now,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO ActivityLog ("+logColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		log.ID, log.PetID, log.TemplateID, log.Date, log.CountIncrement,
		log.DurationSec, now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting activity log: %w", err)
	}
	return log, nil
}

// LogsByPetDate returns the pet's logs for one day key, newest first.
func (r *ActivityRepo) LogsByPetDate(petID, date string) ([]types.ActivityLog, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT "+logColumns+" FROM ActivityLog WHERE petId = ? AND date = ? ORDER BY createdAt DESC",
		petID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("listing activity logs: %w", err)
	}
	defer rows.Close()

	var logs []types.ActivityLog
	for rows.Next() {
		var l types.ActivityLog
		var durationSec sql.NullInt64
		var createdAt string
		if err := rows.Scan(&l.ID, &l.PetID, &l.TemplateID, &l.Date,
			&l.CountIncrement, &durationSec, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning activity log: %w", err)
		}
		l.DurationSec = intPtr(durationSec)
		l.CreatedAt, err = parseTime("createdAt", createdAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity logs: %w", err)
	}
	return logs, nil
}

// DailyTotals returns the derived completion count per template for one
// (pet, day) pair: SUM(countIncrement) grouped by template.
func (r *ActivityRepo) DailyTotals(petID, date string) (map[string]int, error) {
	if petID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := r.s.db.Query(
		"SELECT templateId, SUM(countIncrement) FROM ActivityLog WHERE petId = ? AND date = ? GROUP BY templateId",
		petID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregating daily totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var templateID string
		var total int
		if err := rows.Scan(&templateID, &total); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}
		totals[templateID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily totals: %w", err)
	}
	return totals, nil
}
