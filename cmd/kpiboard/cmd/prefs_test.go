package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emagineer/kpiboard/internal/prefs"
)

func TestSetField(t *testing.T) {
	store := prefs.Initialize(prefs.NewMemorySlot(), func() bool { return false })

	require.NoError(t, setField(store, "company", "D2CBuilders"))
	require.NoError(t, setField(store, "View", " operator "))
	require.NoError(t, setField(store, "range", "year"))
	require.NoError(t, setField(store, "dark", "true"))
	require.NoError(t, setField(store, "dark", "true"))

	assert.Equal(t, prefs.State{
		Company:   prefs.CompanyD2CBuilders,
		View:      prefs.ViewOperator,
		TimeRange: prefs.RangeYear,
		DarkMode:  true,
	}, store.State())
}

func TestSetField_Rejects(t *testing.T) {
	store := prefs.Initialize(prefs.NewMemorySlot(), func() bool { return false })
	before := store.State()

	for _, tc := range []struct{ field, value, msg string }{
		{"company", "acme", "unknown company"},
		{"view", "board", "unknown view"},
		{"range", "decade", "unknown time range"},
		{"dark", "maybe", "invalid dark mode"},
		{"layout", "grid", "unknown preference"},
	} {
		err := setField(store, tc.field, tc.value)
		require.Error(t, err, tc.field)
		assert.Contains(t, err.Error(), tc.msg)
	}
	assert.Equal(t, before, store.State())
}
