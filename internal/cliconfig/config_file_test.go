package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
method = "PUT"
user_agent = "file-agent/1.0"
traceparent = "00-aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa-bbbbbbbbbbbbbbbb-01"
timeout = "5s"
pretty = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if fc.Method != "PUT" {
		t.Errorf("Method = %v, want PUT", fc.Method)
	}
	if fc.UserAgent != "file-agent/1.0" {
		t.Errorf("UserAgent = %v, want file-agent/1.0", fc.UserAgent)
	}
	if fc.Timeout != "5s" {
		t.Errorf("Timeout = %v, want 5s", fc.Timeout)
	}
	if fc.Pretty == nil || !*fc.Pretty {
		t.Errorf("Pretty = %v, want true", fc.Pretty)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("method = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	fc := FileConfig{
		Method:      "PATCH",
		UserAgent:   "file-agent/1.0",
		Traceparent: "00-file-file-01",
		Timeout:     "2s",
		Pretty:      &trueVal,
	}

	t.Run("applies all values", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
			t.Fatalf("ApplyFileConfig() error: %v", err)
		}
		if cfg.Method != "PATCH" || cfg.UserAgent != "file-agent/1.0" || cfg.Traceparent != "00-file-file-01" {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.Timeout != 2*time.Second {
			t.Errorf("Timeout = %v, want 2s", cfg.Timeout)
		}
		if !cfg.Pretty {
			t.Error("Pretty = false, want true")
		}
	})

	t.Run("respects changed flags", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UserAgent = "flag-agent"
		changed := map[string]bool{"user-agent": true, "pretty": true}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			t.Fatalf("ApplyFileConfig() error: %v", err)
		}
		if cfg.UserAgent != "flag-agent" {
			t.Errorf("UserAgent = %v, want flag-agent", cfg.UserAgent)
		}
		if cfg.Pretty {
			t.Error("Pretty = true, want flag value false")
		}
		if cfg.Method != "PATCH" {
			t.Errorf("Method = %v, want PATCH", cfg.Method)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ApplyFileConfig(&cfg, FileConfig{Timeout: "soon"}, map[string]bool{}); err == nil {
			t.Error("expected error for invalid timeout")
		}
	})
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	if !FileExists(dir) {
		t.Errorf("FileExists(%q) = false", dir)
	}
	if FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists() = true for missing file")
	}
}
