package types

import "time"

// VaccineRecord documents an applied vaccine dose and, optionally, when the
// next dose is due.
type VaccineRecord struct {
	ID         string    `json:"id"`
	PetID      string    `json:"petId"`
	Name       string    `json:"name"`
	AppliedAt  string    `json:"appliedAt"` // YYYY-MM-DD
	NextDoseAt *string   `json:"nextDoseAt"`
	VetName    *string   `json:"vetName"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// VaccineRecordCreate is the validated input for creating a VaccineRecord.
type VaccineRecordCreate struct {
	PetID      string  `validate:"required"`
	Name       string  `validate:"required"`
	AppliedAt  string  `validate:"required,datetime=2006-01-02"`
	NextDoseAt *string `validate:"omitnil,datetime=2006-01-02"`
	VetName    *string
	Notes      *string
}

// VaccineRecordPatch is a sparse update for a VaccineRecord.
type VaccineRecordPatch struct {
	Name       *string `validate:"omitnil,min=1"`
	AppliedAt  *string `validate:"omitnil,datetime=2006-01-02"`
	NextDoseAt *string `validate:"omitnil,datetime=2006-01-02"`
	VetName    *string
	Notes      *string
}
