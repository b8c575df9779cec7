package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("JSIG_TEST_LOGDIR", "/tmp/jsig")
	path := writeConfig(t, `
[output]
format = "json"

[log]
verbosity = 2
file = "$JSIG_TEST_LOGDIR/jsig.log"

[scan]
references = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if cfg.Log.Verbosity != 2 {
		t.Errorf("Log.Verbosity = %d, want 2", cfg.Log.Verbosity)
	}
	if cfg.Log.File != "/tmp/jsig/jsig.log" {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, "/tmp/jsig/jsig.log")
	}
	if !cfg.Scan.References {
		t.Error("Expected Scan.References to be true")
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[scan]\nreferences = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "line" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "line")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[output\n", "failed to parse config"},
		{"unknown format", "[output]\nformat = \"xml\"\n", `output.format "xml" is not one of`},
		{"unknown key", "[output]\nstyle = \"pretty\"\n", "output.style"},
		{"negative verbosity", "[log]\nverbosity = -1\n", "log.verbosity -1 must be at least 0"},
		{"verbosity too high", "[log]\nverbosity = 9\n", "log.verbosity 9 must be at most 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if cfg.Output.Format != "line" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "line")
	}

	if err := os.WriteFile(DefaultFile, []byte("[output]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "yaml")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}

	cfg.Output.Format = "html"
	cfg.Log.Verbosity = -2
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	for _, want := range []string{"output.format", "log.verbosity"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %q, want mention of %s", err, want)
		}
	}
}
