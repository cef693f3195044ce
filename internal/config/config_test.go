package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine.GallopThreshold != 7 {
		t.Errorf("expected GallopThreshold=7, got %d", cfg.Engine.GallopThreshold)
	}
	if !cfg.Engine.UseGalloping || !cfg.Engine.UseNaturalRuns {
		t.Error("expected galloping and natural runs enabled by default")
	}
	if cfg.Engine.MinRun != 0 {
		t.Errorf("expected automatic MinRun (0), got %d", cfg.Engine.MinRun)
	}
	if cfg.Trace.Dir != "traces" {
		t.Errorf("expected Trace.Dir=traces, got %s", cfg.Trace.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SORTLAB_TRACE_DIR", "")
	t.Setenv("SORTLAB_LOG_LEVEL", "")
	t.Setenv("SORTLAB_LOG_FORMAT", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sortlab.yaml")

	cfg := DefaultConfig()
	cfg.Engine.MinRun = 16
	cfg.Engine.UseGalloping = false
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Engine.MinRun != 16 {
		t.Errorf("expected MinRun=16, got %d", loaded.Engine.MinRun)
	}
	if loaded.Engine.UseGalloping {
		t.Error("expected UseGalloping=false after load")
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", loaded.Logging.Level)
	}
}

func TestConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("SORTLAB_TRACE_DIR", "")
	t.Setenv("SORTLAB_LOG_LEVEL", "")
	t.Setenv("SORTLAB_LOG_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine.GallopThreshold != 7 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("engine: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SORTLAB_TRACE_DIR", "/tmp/other-traces")
	t.Setenv("SORTLAB_LOG_LEVEL", "error")
	t.Setenv("SORTLAB_LOG_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Trace.Dir != "/tmp/other-traces" {
		t.Errorf("expected env trace dir, got %s", cfg.Trace.Dir)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" {
		t.Errorf("expected env logging overrides, got %+v", cfg.Logging)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad level")
	}
	cfg.Logging.Level = "info"

	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad format")
	}
	cfg.Logging.Format = "console"

	cfg.Trace.Dir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty trace dir")
	}
}
