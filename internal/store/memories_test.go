package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeloapp/zelopet/pkg/types"
)

func TestMemoriesOrderedByMemoryDateDesc(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	_, err := st.Memories().Create(types.MemoryCreate{
		PetID: pet.ID, Text: "Primeiro banho", MemoryDate: "2022-06-01",
	})
	require.NoError(t, err)
	_, err = st.Memories().Create(types.MemoryCreate{
		PetID: pet.ID, Title: ptr("Praia"), Text: "Primeiro dia na praia",
		MemoryDate: "2023-01-12",
	})
	require.NoError(t, err)

	memories, err := st.Memories().ByPet(pet.ID)
	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, "Primeiro dia na praia", memories[0].Text)
	require.NotNil(t, memories[0].Title)
	assert.Equal(t, "Praia", *memories[0].Title)
	assert.Equal(t, "Primeiro banho", memories[1].Text)
	assert.Nil(t, memories[1].Title)
}

func TestMemoryCreateValidation(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)

	_, err := st.Memories().Create(types.MemoryCreate{PetID: pet.ID, MemoryDate: "2023-01-12"})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = st.Memories().Create(types.MemoryCreate{PetID: pet.ID, Text: "x", MemoryDate: "12-01-23"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestMemorySparseUpdateAndDelete(t *testing.T) {
	st := newTestStore(t)
	pet := createTestPet(t, st)
	mem, err := st.Memories().Create(types.MemoryCreate{
		PetID: pet.ID, Text: "Primeiro dia na praia", MemoryDate: "2023-01-12",
	})
	require.NoError(t, err)

	require.NoError(t, st.Memories().Update(mem.ID, types.MemoryPatch{Title: ptr("Praia")}))

	memories, err := st.Memories().ByPet(pet.ID)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	require.NotNil(t, memories[0].Title)
	assert.Equal(t, "Praia", *memories[0].Title)
	assert.Equal(t, "Primeiro dia na praia", memories[0].Text)
	assert.Equal(t, "2023-01-12", memories[0].MemoryDate)

	require.NoError(t, st.Memories().Delete(mem.ID))
	require.NoError(t, st.Memories().Delete(mem.ID))

	memories, err = st.Memories().ByPet(pet.ID)
	require.NoError(t, err)
	assert.Empty(t, memories)
}
