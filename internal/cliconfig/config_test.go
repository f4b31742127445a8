package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Comment != "#" {
		t.Errorf("Comment: got %q, want \"#\"", cfg.Comment)
	}
	if cfg.PerSite || cfg.IncludeDxy {
		t.Errorf("boolean defaults should be false")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfstool.yaml")
	body := "comment: \";\"\ndelimiter: \",\"\npersite: true\ninclude_dxy: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Comment != ";" || cfg.Delimiter != "," {
		t.Errorf("got comment=%q delimiter=%q", cfg.Comment, cfg.Delimiter)
	}
	if !cfg.PerSite || !cfg.IncludeDxy {
		t.Errorf("booleans not loaded: %+v", cfg)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfstool.yaml")
	if err := os.WriteFile(path, []byte("persite: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Comment != "#" {
		t.Errorf("Comment default lost: got %q", cfg.Comment)
	}
	if !cfg.PerSite {
		t.Errorf("persite not applied")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfstool.yaml")
	if err := os.WriteFile(path, []byte(":\n\t-"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
