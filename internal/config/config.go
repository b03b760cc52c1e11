package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/Tiliavir/timelog/internal/storage"
)

// Config is the root configuration for timelog, stored in ~/.timelog/config.toml.
type Config struct {
	// DataDir holds the work/ and tasks/ logs. Defaults to the config
	// directory; $TIMELOG_HOME takes precedence when set.
	DataDir string `toml:"data_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Color enables the styled error tag and headings.
	Color bool `toml:"color"`
}

const (
	// HomeEnv overrides the ~/.timelog directory.
	HomeEnv = "TIMELOG_HOME"
	// DefaultLogLevel is used when log_level is empty.
	DefaultLogLevel = "info"

	configFileName = "config.toml"
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# timelog configuration, ~/.timelog/config.toml
#
# All settings are optional; the defaults below work out of the box.

# Directory holding work/sessions.log and tasks/<mnemonic>/.
# Leave empty to use the directory this file lives in.
# Ignored when TIMELOG_HOME is set.
data_dir = ""

# Verbosity of logs/timelog.log: debug, info, warn or error.
log_level = "info"

# Set to false to print errors without ANSI colors.
color = true
`

// HomeDir returns $TIMELOG_HOME, or ~/.timelog when it is unset.
func HomeDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	return storage.BaseDir()
}

// Load reads config.toml from HomeDir, creating it with annotated defaults
// on first run. A set $TIMELOG_HOME always wins over data_dir.
func Load() (Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return Config{LogLevel: DefaultLogLevel, Color: true}, err
	}
	cfg, err := LoadFile(filepath.Join(dir, configFileName))
	if os.Getenv(HomeEnv) != "" {
		cfg.DataDir = dir
	}
	return cfg, err
}

// LoadFile reads the config at path. A missing file is created from the
// template and the defaults are returned.
func LoadFile(path string) (Config, error) {
	defaults := defaultConfig(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := defaults
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return cfg, nil
}

func defaultConfig(dir string) Config {
	return Config{
		DataDir:  dir,
		LogLevel: DefaultLogLevel,
		Color:    true,
	}
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
