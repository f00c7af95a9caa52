// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/keeledit/keel/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// ClipboardConfig selects and parameterizes the clipboard bridge.
type ClipboardConfig struct {
	// Backend is "exec" (external helper commands), "native" (platform
	// clipboard library), or "auto" to try exec first.
	Backend string `toml:"backend"`

	// CopyCommand and PasteCommand override the auto-detected helper
	// commands for the exec backend. Argv form, command name first.
	CopyCommand  []string `toml:"copy_command"`
	PasteCommand []string `toml:"paste_command"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Clipboard: ClipboardConfig{
			Backend: "auto",
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file %q: %w", filePath, err)
	}

	if _, err := toml.DecodeFile(filePath, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", filePath, err)
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	switch c.Clipboard.Backend {
	case "auto", "exec", "native":
	default:
		c.Clipboard.Backend = defaults.Clipboard.Backend
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. Call once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if configDir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else {
				if fileCfg.Logger.LogLevel != "" || fileCfg.Logger.LogFilePath != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Clipboard.Backend != "" {
					cfg.Clipboard.Backend = fileCfg.Clipboard.Backend
				}
				if len(fileCfg.Clipboard.CopyCommand) > 0 {
					cfg.Clipboard.CopyCommand = fileCfg.Clipboard.CopyCommand
				}
				if len(fileCfg.Clipboard.PasteCommand) > 0 {
					cfg.Clipboard.PasteCommand = fileCfg.Clipboard.PasteCommand
				}
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if
// LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
