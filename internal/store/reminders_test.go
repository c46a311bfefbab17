package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeloapp/zelopet/pkg/types"
)

func TestRemindersOrderedByDatetime(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	later := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	_, err := st.Reminders().Create(types.ReminderCreate{
		PetID: pet.ID, Title: "Banho", Type: "higiene", Datetime: later,
	})
	require.NoError(t, err)
	_, err = st.Reminders().Create(types.ReminderCreate{
		PetID: pet.ID, Title: "Vacina", Type: "vacina", Datetime: sooner,
		Notes: ptr("Levar cartão"),
	})
	require.NoError(t, err)

	reminders, err := st.Reminders().ByPet(pet.ID)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Vacina", reminders[0].Title)
	assert.Equal(t, sooner, reminders[0].Datetime)
	require.NotNil(t, reminders[0].Notes)
	assert.Equal(t, "Levar cartão", *reminders[0].Notes)
	assert.Equal(t, "Banho", reminders[1].Title)
}

func TestReminderCreateValidation(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	_, err := st.Reminders().Create(types.ReminderCreate{
		PetID: pet.ID, Title: "Vacina", Type: "vacina",
	})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestReminderSparseUpdate(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	when := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	rem, err := st.Reminders().Create(types.ReminderCreate{
		PetID: pet.ID, Title: "Vacina", Type: "vacina", Datetime: when,
		Notes: ptr("Levar cartão"),
	})
	require.NoError(t, err)

	require.NoError(t, st.Reminders().Update(rem.ID, types.ReminderPatch{Title: ptr("Vacina Antirrábica")}))

	reminders, err := st.Reminders().ByPet(pet.ID)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	got := reminders[0]
	assert.Equal(t, "Vacina Antirrábica", got.Title)
	assert.Equal(t, "vacina", got.Type)
	assert.Equal(t, when, got.Datetime)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "Levar cartão", *got.Notes)
}

func TestReminderDeleteIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)
	rem, err := st.Reminders().Create(types.ReminderCreate{
		PetID: pet.ID, Title: "Vacina", Type: "vacina",
		Datetime: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, st.Reminders().Delete(rem.ID))
	require.NoError(t, st.Reminders().Delete(rem.ID))

	reminders, err := st.Reminders().ByPet(pet.ID)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
