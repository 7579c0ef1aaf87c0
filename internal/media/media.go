// Package media pulls subtitle streams out of media containers with ffmpeg.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/mgpai22/webvtt/internal/ffmpeg"
)

// holds options for subtitle extraction
type ExtractOptions struct {
	Stream     int    // index among the input's subtitle streams
	FFmpegPath string // empty means ffmpeg.Locate defaults
}

func outputArgs(opts ExtractOptions) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Stream),
		"c:s": "webvtt",
		"f":   "webvtt",
	}
}

func stream(videoPath, outputPath string, opts ExtractOptions) *ffmpeg.Stream {
	return ffmpeg.Input(videoPath).
		Output(outputPath, outputArgs(opts)).
		OverWriteOutput()
}

// Args returns the ffmpeg arguments ExtractSubtitles would run.
func Args(videoPath, outputPath string, opts ExtractOptions) []string {
	return stream(videoPath, outputPath, opts).GetArgs()
}

// ExtractSubtitles converts subtitle stream opts.Stream of videoPath to a
// WebVTT file at outputPath. The process is killed when ctx is done.
func ExtractSubtitles(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractOptions,
) error {
	if opts.Stream < 0 {
		return fmt.Errorf("invalid subtitle stream index %d", opts.Stream)
	}
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.Locate(opts.FFmpegPath)
	if err != nil {
		return err
	}

	compiled := stream(videoPath, outputPath, opts).
		SetFfmpegPath(ffmpegPath).
		Compile()

	cmd := exec.CommandContext(ctx, compiled.Path, compiled.Args[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("ffmpeg extraction cancelled: %w", ctxErr)
		}
		return fmt.Errorf("ffmpeg extraction failed: %w: %s", err, lastLine(stderr.String()))
	}

	return nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
