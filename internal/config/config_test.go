package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "kpiboard.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kpiboard.yaml")
	cfg := DefaultConfig()
	cfg.Storage.Backend = BackendSQLite
	cfg.UI.Theme = "light"
	cfg.UI.Dense = true
	cfg.Export.Dir = "/tmp/exports"

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpiboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  no_color: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "system", cfg.UI.Theme)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpiboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\nexport:\n  dir: out\n"), 0o644))
	t.Setenv("KPIBOARD_STORAGE_BACKEND", "memory")
	t.Setenv("KPIBOARD_NO_COLOR", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "out", cfg.Export.Dir)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("KPIBOARD_NO_COLOR", "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "kpiboard.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading environment")
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpiboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: redis\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.backend")
	assert.Contains(t, err.Error(), "redis")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpiboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestStoragePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = "/var/lib/kpiboard/p.json"
	path, err := cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/kpiboard/p.json", path)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg.Storage.Path = ""
	cfg.Storage.Backend = BackendSQLite
	path, err = cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "preferences.db", filepath.Base(path))
}
