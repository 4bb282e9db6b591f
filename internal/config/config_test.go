package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dfbb/hamcode/internal/config"
)

func TestLoad(t *testing.T) {
	cfg, err := config.Load("../../testdata/config.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Render.Style != "ascii" {
		t.Errorf("Render.Style = %q, want %q", cfg.Render.Style, "ascii")
	}
	if cfg.Render.Scale != 12 {
		t.Errorf("Render.Scale = %d, want %d", cfg.Render.Scale, 12)
	}
	if cfg.Serve.Addr != "127.0.0.1:9944" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, "127.0.0.1:9944")
	}
}

func TestLoad_Defaults(t *testing.T) {
	f, _ := os.CreateTemp("", "*.yaml")
	f.WriteString("")
	f.Close()
	defer os.Remove(f.Name())

	cfg, err := config.Load(f.Name())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Style != "auto" {
		t.Errorf("default Render.Style = %q, want %q", cfg.Render.Style, "auto")
	}
	if cfg.Render.Scale != 18 {
		t.Errorf("default Render.Scale = %d, want %d", cfg.Render.Scale, 18)
	}
	if cfg.Serve.Addr != ":8977" {
		t.Errorf("default Serve.Addr = %q, want %q", cfg.Serve.Addr, ":8977")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	want := config.Defaults()
	want.LogLevel = "info"
	want.HistoryDB = "/tmp/history.db"
	want.Render.Scale = 24
	if err := config.Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
