package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ExplicitMissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("Explicitly named missing config should fail")
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "left_path: /tmp/a\nright_path: /tmp/b\nshow_hidden: true\ntheme: light\nwatch: false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LeftPath != "/tmp/a" || cfg.RightPath != "/tmp/b" {
		t.Errorf("Pane paths = %q / %q", cfg.LeftPath, cfg.RightPath)
	}
	if !cfg.ShowHidden || cfg.Theme != "light" || cfg.Watch {
		t.Errorf("Parsed flags wrong: %+v", cfg)
	}
}

func TestLoad_MalformedIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Malformed YAML should fail")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.configPath = path
	cfg.LeftPath = "/somewhere"
	cfg.ShowHidden = true

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LeftPath != "/somewhere" || !loaded.ShowHidden || loaded.Theme != "dark" {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}
