package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

func writeSQLiteConfig(t *testing.T) (cfgPath, dbPath string) {
	t.Helper()
	t.Setenv(ui.ThemeEnv, "")
	t.Setenv("KPIBOARD_STORAGE_BACKEND", "")
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "preferences.db")
	cfgPath = filepath.Join(dir, "kpiboard.yaml")
	body := "storage:\n  backend: sqlite\n  path: " + dbPath + "\nui:\n  theme: dark\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	return cfgPath, dbPath
}

func TestExecute_ClosesSlotWhenCommandFails(t *testing.T) {
	cfgPath, _ := writeSQLiteConfig(t)

	err := execute([]string{"--config", cfgPath, "--quiet", "prefs", "set", "company", "acme"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown company")
	assert.Nil(t, closeSlot)
}

func TestExecute_PersistsThroughSQLite(t *testing.T) {
	cfgPath, dbPath := writeSQLiteConfig(t)

	require.NoError(t, execute([]string{"--config", cfgPath, "--quiet", "prefs", "set", "view", "operator"}))
	assert.Nil(t, closeSlot)

	slot, err := prefs.OpenSQLiteSlot(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { slot.Close() })

	st := prefs.Initialize(slot, func() bool { return false }).State()
	assert.Equal(t, prefs.ViewOperator, st.View)
	assert.True(t, st.DarkMode)
}
