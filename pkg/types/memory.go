package types

import "time"

// Memory is a photo or note attached to a Pet, shown on the memories
// timeline ordered by MemoryDate.
type Memory struct {
	ID         string    `json:"id"`
	PetID      string    `json:"petId"`
	Title      *string   `json:"title"`
	Text       string    `json:"text"`
	MemoryDate string    `json:"memoryDate"` // YYYY-MM-DD
	PhotoURI   *string   `json:"photoUri"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MemoryCreate is the validated input for creating a Memory.
type MemoryCreate struct {
	PetID      string  `validate:"required"`
	Title      *string `validate:"omitnil,min=1"`
	Text       string  `validate:"required"`
	MemoryDate string  `validate:"required,datetime=2006-01-02"`
	PhotoURI   *string
}

// MemoryPatch is a sparse update for a Memory.
type MemoryPatch struct {
	Title      *string
	Text       *string `validate:"omitnil,min=1"`
	MemoryDate *string `validate:"omitnil,datetime=2006-01-02"`
	PhotoURI   *string
}
