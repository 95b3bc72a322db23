// Package config handles configuration loading and validation for kpiboard
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "kpiboard"
	configFileName = "kpiboard.yaml"
)

// Storage backends for the preference slot.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the main configuration for kpiboard
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Export  ExportConfig  `yaml:"export"`
}

// StorageConfig selects where preferences are persisted
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file sqlite memory"`
	// Path defaults to preferences.json or preferences.db in the config dir
	Path string `yaml:"path"`
}

// UIConfig holds terminal display settings
type UIConfig struct {
	// Theme seeds dark mode when no preferences are saved: system, dark or light
	Theme   string `yaml:"theme" validate:"oneof=system dark light"`
	Dense   bool   `yaml:"dense"`
	NoColor bool   `yaml:"no_color"`
}

// ExportConfig holds CSV export settings
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
		},
		UI: UIConfig{
			Theme: "system",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Dir returns the kpiboard directory under the user config dir.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// GetConfigPath returns the default path of kpiboard.yaml
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.applyEnv(); err != nil {
				return nil, err
			}
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads configuration from the default location
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// envOverrides are read from the environment after the file.
type envOverrides struct {
	StorageBackend string `envconfig:"KPIBOARD_STORAGE_BACKEND"`
	StoragePath    string `envconfig:"KPIBOARD_STORAGE_PATH"`
	ExportDir      string `envconfig:"KPIBOARD_EXPORT_DIR"`
	NoColor        *bool  `envconfig:"KPIBOARD_NO_COLOR"`
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if env.StorageBackend != "" {
		c.Storage.Backend = env.StorageBackend
	}
	if env.StoragePath != "" {
		c.Storage.Path = env.StoragePath
	}
	if env.ExportDir != "" {
		c.Export.Dir = env.ExportDir
	}
	if env.NoColor != nil {
		c.UI.NoColor = *env.NoColor
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %q is not one of [%s]", yamlPath(fe.Namespace()), fe.Value(), fe.Param()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// yamlPath turns "Config.Storage.Backend" into "storage.backend".
func yamlPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// StoragePath returns the slot location for the configured backend.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == BackendSQLite {
		return filepath.Join(dir, "preferences.db"), nil
	}
	return filepath.Join(dir, "preferences.json"), nil
}
