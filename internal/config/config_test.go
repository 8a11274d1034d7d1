package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Listen != "127.0.0.1:4221" {
		t.Errorf("listen: %q", cfg.Listen)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("max_body_bytes: %d", cfg.MaxBodyBytes)
	}
}

func TestValidateFillsZeroValues(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("error: %v", err)
	}
	if cfg.Listen == "" || cfg.BaseDir == "" || cfg.MaxBodyBytes == 0 {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	for _, cfg := range []Config{
		{MaxConns: -1},
		{ReadTimeoutSec: -1},
		{WriteTimeoutSec: -1},
	} {
		if err := cfg.Validate(); err == nil {
			t.Errorf("%+v: expected error", cfg)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"listen": ":9000", "base_dir": "/srv/files", "max_conns": 8}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("listen: %q", cfg.Listen)
	}
	if cfg.BaseDir != "/srv/files" {
		t.Errorf("base_dir: %q", cfg.BaseDir)
	}
	if cfg.MaxConns != 8 {
		t.Errorf("max_conns: %d", cfg.MaxConns)
	}
	// Unspecified fields keep their defaults.
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("max_body_bytes: %d", cfg.MaxBodyBytes)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error")
	}
}
