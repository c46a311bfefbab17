package types

import "time"

// Tutor is a person responsible for a Pet.
type Tutor struct {
	ID        string    `json:"id"`
	PetID     string    `json:"petId"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// TutorCreate is the validated input for creating a Tutor.
type TutorCreate struct {
	PetID string  `validate:"required"`
	Name  string  `validate:"required"`
	Role  *string `validate:"omitnil,min=1"`
}

// TutorPatch is a sparse update for a Tutor.
type TutorPatch struct {
	Name *string `validate:"omitnil,min=1"`
	Role *string
}
