package types

import "time"

// Pet is the root aggregate. Every other entity references a Pet and is
// removed by the engine's cascade when its Pet is deleted.
type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed"`
	Sex       *string   `json:"sex"`
	BirthDate *string   `json:"birthDate"` // YYYY-MM-DD
	WeightKg  *float64  `json:"weightKg"`
	Neutered  bool      `json:"neutered"`
	PhotoURI  *string   `json:"photoUri"`
	CreatedAt time.Time `json:"createdAt"`
}

// PetCreate is the validated input for creating a Pet. The repository
// assigns the id and creation timestamp.
type PetCreate struct {
	Name      string   `validate:"required"`
	Species   string   `validate:"required"`
	Breed     *string  `validate:"omitnil,min=1"`
	Sex       *string  `validate:"omitnil,min=1"`
	BirthDate *string  `validate:"omitnil,datetime=2006-01-02"`
	WeightKg  *float64 `validate:"omitnil,gte=0"`
	Neutered  *bool
	PhotoURI  *string
}

// PetPatch is a sparse update: only non-nil fields are written. An all-nil
// patch is a no-op.
type PetPatch struct {
	Name      *string  `validate:"omitnil,min=1"`
	Species   *string  `validate:"omitnil,min=1"`
	Breed     *string
	Sex       *string
	BirthDate *string  `validate:"omitnil,datetime=2006-01-02"`
	WeightKg  *float64 `validate:"omitnil,gte=0"`
	Neutered  *bool
	PhotoURI  *string
}
