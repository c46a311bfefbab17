package types

import "time"

// Reminder is a dated to-do for a Pet (vaccine appointment, medication,
// grooming, ...).
type Reminder struct {
	ID        string    `json:"id"`
	PetID     string    `json:"petId"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Datetime  time.Time `json:"datetime"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReminderCreate is the validated input for creating a Reminder.
type ReminderCreate struct {
	PetID    string    `validate:"required"`
	Title    string    `validate:"required"`
	Type     string    `validate:"required"`
	Datetime time.Time `validate:"required"`
	Notes    *string
}

// ReminderPatch is a sparse update for a Reminder.
type ReminderPatch struct {
	Title    *string `validate:"omitnil,min=1"`
	Type     *string `validate:"omitnil,min=1"`
	Datetime *time.Time
	Notes    *string
}
