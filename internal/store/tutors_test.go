package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeloapp/zelopet/pkg/types"
)

func TestTutorCRUD(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	tutor, err := st.Tutors().Create(types.TutorCreate{
		PetID: pet.ID, Name: "Ana Silva", Role: ptr("Dono"),
	})
	require.NoError(t, err)

	tutors, err := st.Tutors().ByPet(pet.ID)
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "Ana Silva", tutors[0].Name)
	require.NotNil(t, tutors[0].Role)
	assert.Equal(t, "Dono", *tutors[0].Role)

	require.NoError(t, st.Tutors().Update(tutor.ID, types.TutorPatch{Role: ptr("Tutora")}))

	tutors, err = st.Tutors().ByPet(pet.ID)
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, "Ana Silva", tutors[0].Name)
	assert.Equal(t, "Tutora", *tutors[0].Role)

	require.NoError(t, st.Tutors().Delete(tutor.ID))
	require.NoError(t, st.Tutors().Delete(tutor.ID))

	tutors, err = st.Tutors().ByPet(pet.ID)
	require.NoError(t, err)
	assert.Empty(t, tutors)
}

func TestTutorCreateValidation(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	_, err := st.Tutors().Create(types.TutorCreate{PetID: pet.ID})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = st.Tutors().Create(types.TutorCreate{Name: "Ana"})
	assert.ErrorIs(t, err, types.ErrValidation)
}
