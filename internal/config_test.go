package internal

import (
	"path/filepath"
	"testing"
)

func TestResolveFilePathUsesHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg := DefaultConfig()
	if err := cfg.ResolveFilePath(); err != nil {
		t.Fatalf("ResolveFilePath failed: %v", err)
	}

	want := filepath.Join(home, DEFAULT_FILE_NAME)
	if cfg.FilePath != want {
		t.Fatalf("expected %s, got %s", want, cfg.FilePath)
	}
}

func TestResolveFilePathKeepsExplicitPath(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")

	cfg := DefaultConfig()
	cfg.FilePath = "/tmp/elsewhere"

	if err := cfg.ResolveFilePath(); err != nil {
		t.Fatalf("ResolveFilePath failed: %v", err)
	}
	if cfg.FilePath != "/tmp/elsewhere" {
		t.Fatalf("explicit path was replaced with %s", cfg.FilePath)
	}
}

func TestResolveFilePathFailsWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("home", "")

	cfg := DefaultConfig()
	if err := cfg.ResolveFilePath(); err == nil {
		t.Fatal("expected an error when no home directory is set")
	}
}

func TestDefaultConfigHasClockAndLogger(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Clock == nil {
		t.Fatal("expected a clock")
	}
	if cfg.Logger == nil {
		t.Fatal("expected a logger")
	}
	if cfg.FilePath != "" {
		t.Fatalf("expected no path before resolution, got %s", cfg.FilePath)
	}
}
