package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Normalizer.DefaultForm != "3" {
		t.Errorf("expected default form 3, got %q", cfg.Normalizer.DefaultForm)
	}
	if cfg.Output.Format != "sql" {
		t.Errorf("expected default output format sql, got %q", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level info, got %q", cfg.Logging.Level)
	}
	if cfg.Watch.PollIntervalMs != 500 {
		t.Errorf("expected default poll interval 500ms, got %d", cfg.Watch.PollIntervalMs)
	}
}

func TestLoadOverlaysOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "normalizer:\n  default_form: \"B\"\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Normalizer.DefaultForm != "B" {
		t.Errorf("expected overridden form B, got %q", cfg.Normalizer.DefaultForm)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected overridden format json, got %q", cfg.Output.Format)
	}
	// Fields absent from the file keep their Default() value.
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level to keep its default, got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error loading a missing config file")
	}
}
