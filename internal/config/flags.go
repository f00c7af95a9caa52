// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath   *string
	LogLevel         *string
	LogFilePath      *string
	ClipboardBackend *string
}

// DefineFlags sets up the command-line flags and associates them with
// the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.ClipboardBackend = flag.String("clipboard", "", "Clipboard backend (auto, exec, native) - Overrides config file")
}

// ParseFlags parses the defined command-line flags into the Flags
// struct and returns the remaining non-flag arguments (the file path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config with values from flags that were
// actually set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["loglevel"] && f.LogLevel != nil {
		cfg.Logger.LogLevel = *f.LogLevel
	}
	if set["logfile"] && f.LogFilePath != nil {
		cfg.Logger.LogFilePath = *f.LogFilePath
	}
	if set["clipboard"] && f.ClipboardBackend != nil {
		cfg.Clipboard.Backend = *f.ClipboardBackend
	}
}
