// Package ffmpeg locates the ffmpeg binary used for subtitle extraction.
package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvPath overrides the binary location.
const EnvPath = "WEBVTT_FFMPEG_PATH"

// ErrNotFound is returned when no ffmpeg binary can be located.
var ErrNotFound = errors.New("ffmpeg not found: install it or set " + EnvPath)

// Locate returns the ffmpeg binary to run. An explicitly configured path
// wins, then $WEBVTT_FFMPEG_PATH, then ffmpeg on $PATH.
func Locate(configured string) (string, error) {
	if path := strings.TrimSpace(configured); path != "" {
		return checkExecutable(path)
	}
	if path := strings.TrimSpace(os.Getenv(EnvPath)); path != "" {
		return checkExecutable(path)
	}
	found, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", ErrNotFound
	}
	return found, nil
}

// FFmpegPath is Locate without a configured path.
func FFmpegPath() (string, error) {
	return Locate("")
}

func checkExecutable(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("ffmpeg binary %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("ffmpeg binary %s is a directory", path)
	}
	return path, nil
}
