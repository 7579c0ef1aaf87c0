package media

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mgpai22/webvtt/internal/vttio"
)

func TestArgs(t *testing.T) {
	args := Args("movie.mkv", "out.vtt", ExtractOptions{Stream: 2})

	pairs := map[string]string{
		"-i":   "movie.mkv",
		"-map": "0:s:2",
		"-c:s": "webvtt",
		"-f":   "webvtt",
	}
	for flag, value := range pairs {
		i := slices.Index(args, flag)
		if i < 0 || i+1 >= len(args) || args[i+1] != value {
			t.Errorf("expected %s %s in %v", flag, value, args)
		}
	}
	if !slices.Contains(args, "out.vtt") {
		t.Errorf("output path missing from %v", args)
	}
	if !slices.Contains(args, "-y") {
		t.Errorf("overwrite flag missing from %v", args)
	}
}

func TestExtractSubtitlesErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	err := ExtractSubtitles(ctx, filepath.Join(dir, "missing.mkv"), filepath.Join(dir, "out.vtt"), ExtractOptions{})
	if err == nil || !strings.Contains(err.Error(), "video file not found") {
		t.Errorf("expected not found error, got %v", err)
	}

	err = ExtractSubtitles(ctx, "movie.mkv", "out.vtt", ExtractOptions{Stream: -1})
	if err == nil {
		t.Error("expected error for negative stream index")
	}
}

func TestExtractSubtitlesIntegration(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed; skipping integration test")
	}

	dir := t.TempDir()
	srt := filepath.Join(dir, "input.srt")
	content := "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld\n"
	if err := os.WriteFile(srt, []byte(content), 0o644); err != nil {
		t.Fatalf("write srt: %v", err)
	}

	out := filepath.Join(dir, "nested", "out.vtt")
	if err := ExtractSubtitles(context.Background(), srt, out, ExtractOptions{}); err != nil {
		t.Fatalf("ExtractSubtitles returned error: %v", err)
	}

	doc, err := vttio.ReadDocument(out)
	if err != nil {
		t.Fatalf("extracted file does not parse: %v", err)
	}
	if len(doc.Cues) != 2 || doc.Cues[0].Payload != "Hello" {
		t.Errorf("unexpected cues %+v", doc.Cues)
	}
	if doc.Cues[0].End.Milliseconds() != 2500 {
		t.Errorf("cue 0 end = %v", doc.Cues[0].End)
	}
}
