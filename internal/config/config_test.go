package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "text" || cfg.HistoryLimit != 0 || cfg.Debug || cfg.TUI.Glyphs != "unicode" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "asciitree.yaml")
	data := "format: JSON\nhistory_limit: 50\ntui:\n  glyphs: ascii\n  sample: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ASCIITREE_DEBUG", "true")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected normalized format; got %q", cfg.Format)
	}
	if cfg.HistoryLimit != 50 || !cfg.TUI.Sample || cfg.TUI.Glyphs != "ascii" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Debug {
		t.Fatalf("expected ASCIITREE_DEBUG to enable debug")
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "asciitree")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("pretty: true\nhistory_limit: -3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Pretty {
		t.Fatalf("expected pretty from default config file")
	}
	if cfg.HistoryLimit != 0 {
		t.Fatalf("expected negative limit clamped to 0; got %d", cfg.HistoryLimit)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing explicit config file")
	}
}
