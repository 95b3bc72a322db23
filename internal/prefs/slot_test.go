package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")

	first := Initialize(NewFileSlot(path), ambient(false))
	require.NoError(t, first.SetCompany(CompanyPortfolio))
	require.NoError(t, first.SetTimeRange(RangeYear))

	second := Initialize(NewFileSlot(path), ambient(true))
	assert.Equal(t, first.State(), second.State())
}

func TestFileSlot_MissingFileIsAbsent(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "preferences.json"))

	_, ok, err := slot.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSlot_CorruptFileFallsBackAndIsRepaired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("???"), 0o644))

	slot := NewFileSlot(path)
	_, _, err := slot.Get(StorageKey)
	require.Error(t, err)

	s := Initialize(slot, ambient(true))
	assert.Equal(t, DefaultState(true), s.State())

	raw, ok, err := slot.Get(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	st, err := decodeState(raw)
	require.NoError(t, err)
	assert.Equal(t, s.State(), st)
}

func TestFileSlot_KeepsOtherKeys(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, slot.Set("other", "value"))
	require.NoError(t, slot.Set(StorageKey, "{}"))

	v, ok, err := slot.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestSQLiteSlot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.db")

	slot, err := OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	s := Initialize(slot, ambient(false))
	require.NoError(t, s.SetView(ViewOperator))
	require.NoError(t, s.ToggleDarkMode())
	require.NoError(t, slot.Close())

	reopened, err := OpenSQLiteSlot(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	restored := Initialize(reopened, ambient(false))
	if diff := cmp.Diff(s.State(), restored.State()); diff != "" {
		t.Errorf("restored state mismatch (-saved +restored):\n%s", diff)
	}
}

func TestSQLiteSlot_MissingKey(t *testing.T) {
	slot, err := OpenSQLiteSlot(context.Background(), filepath.Join(t.TempDir(), "p.db"))
	require.NoError(t, err)
	t.Cleanup(func() { slot.Close() })

	_, ok, err := slot.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
