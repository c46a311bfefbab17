package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingFile(t *testing.T) {
	s := New(t.TempDir())

	_, ok, err := s.Get("anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetAndGet(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Set("active-pet", "pet-1"))
	require.NoError(t, s.Set("theme", "dark"))

	v, ok, err := s.Get("active-pet")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pet-1", v)
}

func TestSetOverwrites(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Set("active-pet", "pet-1"))
	require.NoError(t, s.Set("active-pet", "pet-2"))

	v, ok, err := s.Get("active-pet")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pet-2", v)
}

func TestRemove(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Set("active-pet", "pet-1"))
	require.NoError(t, s.Remove("active-pet"))
	require.NoError(t, s.Remove("never-existed"))

	_, ok, err := s.Get("active-pet")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMultiRemove(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Set("c", "3"))

	require.NoError(t, s.MultiRemove("a", "b", "missing"))

	_, ok, err := s.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := s.Get("c")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	require.NoError(t, s.Set("active-pet", "pet-1"))

	s2 := New(dir)
	v, ok, err := s2.Get("active-pet")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pet-1", v)
}

func TestCorruptFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))

	s := New(dir)
	_, _, err := s.Get("anything")
	assert.Error(t, err)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Set("a", "1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}
