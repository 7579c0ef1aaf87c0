package ffmpeg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fakeBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

func TestLocatePrefersConfiguredPath(t *testing.T) {
	configured := fakeBinary(t)
	t.Setenv(EnvPath, fakeBinary(t))

	got, err := Locate(configured)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if got != configured {
		t.Errorf("Locate = %q, want %q", got, configured)
	}
}

func TestLocateUsesEnv(t *testing.T) {
	fromEnv := fakeBinary(t)
	t.Setenv(EnvPath, fromEnv)

	got, err := FFmpegPath()
	if err != nil {
		t.Fatalf("FFmpegPath returned error: %v", err)
	}
	if got != fromEnv {
		t.Errorf("FFmpegPath = %q, want %q", got, fromEnv)
	}
}

func TestLocateSearchesPath(t *testing.T) {
	bin := fakeBinary(t)
	t.Setenv(EnvPath, "")
	t.Setenv("PATH", filepath.Dir(bin))

	got, err := Locate("")
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if got != bin {
		t.Errorf("Locate = %q, want %q", got, bin)
	}
}

func TestLocateErrors(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("PATH", t.TempDir())

	if _, err := Locate(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := Locate(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if _, err := Locate(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}
