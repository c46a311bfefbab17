package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeloapp/zelopet/pkg/types"
)

func TestCurrentVersionOnFreshDatabase(t *testing.T) {
	st, err := Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()

	version, err := st.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, version)
}

func TestMigrateAppliesAllVersions(t *testing.T) {
	st := newTestStore(t)

	version, err := st.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].version, version)

	// Every domain table must exist and be queryable.
	for _, table := range types.TablesParentFirst {
		var count int
		require.NoError(t, st.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Equal(t, 0, count)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	st := newTestStore(t)

	before, err := st.CurrentVersion()
	require.NoError(t, err)

	require.NoError(t, st.Migrate())

	after, err := st.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Exactly one schema_migrations row per applied version.
	var rows int
	require.NoError(t, st.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&rows))
	assert.Equal(t, len(migrations), rows)
}

func TestMigrateSurvivesReopen(t *testing.T) {
	dataDir := t.TempDir()

	st, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	require.NoError(t, st.Migrate())
	require.NoError(t, st.Close())

	st2, err := Open(types.Config{DataDir: dataDir})
	require.NoError(t, err)
	defer st2.Close()

	require.NoError(t, st2.Migrate())
	version, err := st2.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].version, version)
}
