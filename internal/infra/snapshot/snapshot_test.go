//go:build unit

package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"portaria/internal/infra/snapshot"
	"portaria/internal/usecase/readmodel"
	"portaria/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.json")
	store := snapshot.NewStore(path)

	first := builder.NewScheduleBuilder().BuildRM()
	second := builder.NewScheduleBuilder().AsDelivery().BuildRM()

	require.NoError(t, store.Save([]*readmodel.ScheduleRM{first, second}))

	loaded := store.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, first.ID, loaded[0].ID)
	assert.Equal(t, second.ID, loaded[1].ID)
	assert.JSONEq(t, string(first.Payload), string(loaded[0].Payload))
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := snapshot.NewStore(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, store.Load())
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array`), 0o644))

	store := snapshot.NewStore(path)
	assert.Nil(t, store.Load())
}

func TestStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.json")
	store := snapshot.NewStore(path)

	rm := builder.NewScheduleBuilder().BuildRM()
	require.NoError(t, store.Save([]*readmodel.ScheduleRM{rm}))
	require.NoError(t, store.Save(nil))

	assert.Empty(t, store.Load())

	// no stray temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
