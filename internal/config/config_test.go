package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFileMissingIsNotError(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("nil config")
	}
}

func TestLoadFromFileParsesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[logger]
log_level = "debug"
log_file = "keel.log"

[clipboard]
backend = "exec"
copy_command = ["xclip", "-selection", "clipboard", "-in"]
paste_command = ["xclip", "-selection", "clipboard", "-out"]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if cfg.Logger.LogLevel != "debug" || cfg.Logger.LogFilePath != "keel.log" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
	if cfg.Clipboard.Backend != "exec" {
		t.Errorf("backend = %q", cfg.Clipboard.Backend)
	}
	if len(cfg.Clipboard.CopyCommand) != 4 || cfg.Clipboard.CopyCommand[0] != "xclip" {
		t.Errorf("copy_command = %v", cfg.Clipboard.CopyCommand)
	}
}

func TestLoadFromFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logger\nbroken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFromFile(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestValidateResetsBadValues(t *testing.T) {
	cfg := &Config{}
	cfg.Clipboard.Backend = "telepathy"
	cfg.validate()
	if cfg.Clipboard.Backend != "auto" {
		t.Errorf("backend = %q, want auto", cfg.Clipboard.Backend)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.Logger.LogLevel)
	}
}
