package types

import "time"

// ActivityTemplate is a recurring checklist item definition owned by a Pet,
// ordered by SortOrder on the home screen.
type ActivityTemplate struct {
	ID                string  `json:"id"`
	PetID             string  `json:"petId"`
	Title             string  `json:"title"`
	Icon              *string `json:"icon"`
	TargetCountPerDay *int    `json:"targetCountPerDay"`
	IsTimer           bool    `json:"isTimer"`
	SortOrder         *int    `json:"sortOrder"`
}

// ActivityLog is one append-only record of a template being performed on a
// given day. Logs are never updated; daily progress is derived by summing
// CountIncrement per template per day.
type ActivityLog struct {
	ID             string    `json:"id"`
	PetID          string    `json:"petId"`
	TemplateID     string    `json:"templateId"`
	Date           string    `json:"date"` // YYYY-MM-DD day key
	CountIncrement int       `json:"countIncrement"`
	DurationSec    *int      `json:"durationSec"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ActivityTemplateCreate is the validated input for creating a template.
type ActivityTemplateCreate struct {
	PetID             string  `validate:"required"`
	Title             string  `validate:"required"`
	Icon              *string `validate:"omitnil,min=1"`
	TargetCountPerDay *int    `validate:"omitnil,gt=0"`
	IsTimer           *bool
	SortOrder         *int
}

// ActivityTemplatePatch is a sparse update for a template.
type ActivityTemplatePatch struct {
	Title             *string `validate:"omitnil,min=1"`
	Icon              *string
	TargetCountPerDay *int `validate:"omitnil,gt=0"`
	IsTimer           *bool
	SortOrder         *int
}

// ActivityLogCreate is the validated input for appending a log entry.
type ActivityLogCreate struct {
	PetID          string `validate:"required"`
	TemplateID     string `validate:"required"`
	Date           string `validate:"required,datetime=2006-01-02"`
	CountIncrement int    `validate:"required,gte=1"`
	DurationSec    *int   `validate:"omitnil,gte=0"`
}
