package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeloapp/zelopet/pkg/types"
)

// newTestStore opens a store in a fresh temp dir and migrates it to the
// latest schema version.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate())
	return st
}

// createTestPet inserts a minimal pet and returns it.
func createTestPet(t *testing.T, st *Store) *types.Pet {
	t.Helper()
	pet, err := st.Pets().Create(types.PetCreate{Name: "Rex", Species: "Cão"})
	require.NoError(t, err)
	return pet
}

func ptr[T any](v T) *T { return &v }

func TestOpenCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	st, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	defer st.Close()

	_, err = os.Stat(filepath.Join(dataDir, DatabaseFileName))
	require.NoError(t, err)
}

func TestOpenRejectsFileDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Open(types.Config{DataDir: path})
	require.ErrorIs(t, err, types.ErrDataDirIsFile)
}

func TestCloseIsIdempotent(t *testing.T) {
	st, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, st.Close())
	require.NoError(t, st.Close())
}

func TestForeignKeysEnforced(t *testing.T) {
	st := newTestStore(t)

	// A child row referencing a missing pet must be rejected by the engine.
	_, err := st.db.Exec(
		"INSERT INTO Tutor (id, petId, name, createdAt) VALUES (?, ?, ?, ?)",
		"t1", "no-such-pet", "Ana", "2026-01-01T00:00:00Z",
	)
	require.Error(t, err)
}
