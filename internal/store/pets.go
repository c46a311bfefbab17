// Pet repository. Pets are the root aggregate; deleting one cascades to all
// child tables through the engine's foreign-key handling, not application
// code.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zeloapp/zelopet/pkg/types"
)

// PetRepo provides validated CRUD over the Pet table.
type PetRepo struct {
	s *Store
}

const petColumns = "id, name, species, breed, sex, birthDate, weightKg, neutered, photoUri, createdAt"

// List returns all pets, newest first.
func (r *PetRepo) List() ([]types.Pet, error) {
	rows, err := r.s.db.Query(
		"SELECT " + petColumns + " FROM Pet ORDER BY createdAt DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}
	defer rows.Close()

	var pets []types.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pet: %w", err)
		}
		pets = append(pets, *pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pets: %w", err)
	}
	return pets, nil
}

// Get returns the pet with the given id, or ErrNotFound.
func (r *PetRepo) Get(id string) (*types.Pet, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := r.s.db.QueryRow("SELECT "+petColumns+" FROM Pet WHERE id = ?", id)
	pet, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting pet %s: %w", id, err)
	}
	return pet, nil
}

// Create validates the input, inserts one row, and returns the persisted
// pet without a read-back. A nil Neutered is stored as NULL and reads back
// as false.
func (r *PetRepo) Create(in types.PetCreate) (*types.Pet, error) {
	if err := types.Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	pet := &types.Pet{
		ID:        newID(),
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		Sex:       in.Sex,
		BirthDate: in.BirthDate,
		WeightKg:  in.WeightKg,
		Neutered:  in.Neutered != nil && *in.Neutered,
		PhotoURI:  in.PhotoURI,
		CreatedAt: now,
	}

	_, err := r.s.db.Exec(
		"INSERT INTO Pet ("+petColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		pet.ID, pet.Name, pet.Species, pet.Breed, pet.Sex, pet.BirthDate,
		pet.WeightKg, nullBoolArg(in.Neutered), pet.PhotoURI,
		now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting pet: %w", err)
	}
	return pet, nil
}

// Update applies a sparse patch: only non-nil fields are written. An all-nil
// patch executes no statement.
func (r *PetRepo) Update(id string, patch types.PetPatch) error {
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

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Species != nil {
		set("species", *patch.Species)
	}
	if patch.Breed != nil {
		set("breed", *patch.Breed)
	}
	if patch.Sex != nil {
		set("sex", *patch.Sex)
	}
	if patch.BirthDate != nil {
		set("birthDate", *patch.BirthDate)
	}
	if patch.WeightKg != nil {
		set("weightKg", *patch.WeightKg)
	}
	if patch.Neutered != nil {
		set("neutered", toDBBool(*patch.Neutered))
	}
	if patch.PhotoURI != nil {
		set("photoUri", *patch.PhotoURI)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.s.db.Exec("UPDATE Pet SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating pet %s: %w", id, err)
	}
	return nil
}

// Delete removes the pet with the given id; the engine cascades to all
// child tables. Deleting a missing id is not an error.
func (r *PetRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := r.s.db.Exec("DELETE FROM Pet WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting pet %s: %w", id, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPet(row scanner) (*types.Pet, error) {
	var p types.Pet
	var breed, sex, birthDate, photoURI sql.NullString
	var weightKg sql.NullFloat64
	var neutered sql.NullInt64
	var createdAt string

	err := row.Scan(&p.ID, &p.Name, &p.Species, &breed, &sex, &birthDate,
		&weightKg, &neutered, &photoURI, &createdAt)
	if err != nil {
		return nil, err
	}

	p.Breed = strPtr(breed)
	p.Sex = strPtr(sex)
	p.BirthDate = strPtr(birthDate)
	p.WeightKg = floatPtr(weightKg)
	p.Neutered = fromDBBool(neutered)
	p.PhotoURI = strPtr(photoURI)
	p.CreatedAt, err = parseTime("createdAt", createdAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
