package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeloapp/zelopet/pkg/types"
)

func TestPetCreateAndGet(t *testing.T) {
	st := newTestStore(t)

	pet, err := st.Pets().Create(types.PetCreate{
		Name:      "Paçoca",
		Species:   "Cão",
		Breed:     ptr("Golden Retriever"),
		BirthDate: ptr("2021-05-12"),
		WeightKg:  ptr(28.5),
		Neutered:  ptr(true),
	})
	require.NoError(t, err)
	require.NotEmpty(t, pet.ID)

	got, err := st.Pets().Get(pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paçoca", got.Name)
	assert.Equal(t, "Cão", got.Species)
	require.NotNil(t, got.Breed)
	assert.Equal(t, "Golden Retriever", *got.Breed)
	require.NotNil(t, got.WeightKg)
	assert.Equal(t, 28.5, *got.WeightKg)
	assert.True(t, got.Neutered)
	assert.Nil(t, got.Sex)
	assert.Nil(t, got.PhotoURI)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestPetBooleanDefaultsToFalse(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	got, err := st.Pets().Get(pet.ID)
	require.NoError(t, err)
	assert.False(t, got.Neutered)
}

func TestPetGetNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Pets().Get("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = st.Pets().Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestPetCreateValidationWritesNothing(t *testing.T) {
	st := newTestStore(t)

	tests := []struct {
		name  string
		input types.PetCreate
	}{
		{"missing name", types.PetCreate{Species: "Cão"}},
		{"missing species", types.PetCreate{Name: "Rex"}},
		{"bad birth date", types.PetCreate{Name: "Rex", Species: "Cão", BirthDate: ptr("12/05/2021")}},
		{"negative weight", types.PetCreate{Name: "Rex", Species: "Cão", WeightKg: ptr(-1.0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := st.Pets().Create(tc.input)
			assert.ErrorIs(t, err, types.ErrValidation)
		})
	}

	pets, err := st.Pets().List()
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func TestPetSparseUpdate(t *testing.T) {
	st := newTestStore(t)
	pet, err := st.Pets().Create(types.PetCreate{
		Name:     "Rex",
		Species:  "Cão",
		Breed:    ptr("Vira-lata"),
		WeightKg: ptr(12.0),
	})
	require.NoError(t, err)

	require.NoError(t, st.Pets().Update(pet.ID, types.PetPatch{Name: ptr("Rexão")}))

	got, err := st.Pets().Get(pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rexão", got.Name)
	require.NotNil(t, got.Breed)
	assert.Equal(t, "Vira-lata", *got.Breed)
	require.NotNil(t, got.WeightKg)
	assert.Equal(t, 12.0, *got.WeightKg)
}

func TestPetUpdateAllNilIsNoOp(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	require.NoError(t, st.Pets().Update(pet.ID, types.PetPatch{}))

	got, err := st.Pets().Get(pet.ID)
	require.NoError(t, err)
	assert.Equal(t, pet.Name, got.Name)
}

func TestPetUpdateValidation(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	err := st.Pets().Update(pet.ID, types.PetPatch{WeightKg: ptr(-3.0)})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestPetDeleteIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	require.NoError(t, st.Pets().Delete(pet.ID))
	require.NoError(t, st.Pets().Delete(pet.ID))
	require.NoError(t, st.Pets().Delete("never-existed"))

	_, err := st.Pets().Get(pet.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPetDeleteCascades(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	tmpl, err := st.Activities().CreateTemplate(types.ActivityTemplateCreate{
		PetID: pet.ID, Title: "Passear",
	})
	require.NoError(t, err)
	_, err = st.Activities().Log(types.ActivityLogCreate{
		PetID: pet.ID, TemplateID: tmpl.ID, Date: "2026-09-01", CountIncrement: 1,
	})
	require.NoError(t, err)
	_, err = st.Reminders().Create(types.ReminderCreate{
		PetID: pet.ID, Title: "Vacina", Type: "vacina",
		Datetime: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = st.Vaccines().Create(types.VaccineRecordCreate{
		PetID: pet.ID, Name: "V10", AppliedAt: "2025-10-10",
	})
	require.NoError(t, err)
	_, err = st.Tutors().Create(types.TutorCreate{PetID: pet.ID, Name: "Ana"})
	require.NoError(t, err)
	_, err = st.Memories().Create(types.MemoryCreate{
		PetID: pet.ID, Text: "Praia", MemoryDate: "2023-01-12",
	})
	require.NoError(t, err)

	require.NoError(t, st.Pets().Delete(pet.ID))

	for _, table := range types.TablesParentFirst {
		var count int
		require.NoError(t, st.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Zero(t, count, "table %s not emptied by cascade", table)
	}
}
