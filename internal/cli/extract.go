package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/webvtt/internal/media"
	"github.com/mgpai22/webvtt/internal/vttio"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract [video_file]",
		Short: "Extract a subtitle stream from a video file as WebVTT",
		Long: `Extract a subtitle stream from a media file with ffmpeg, convert it to
WebVTT and write it in canonical form.

ffmpeg is taken from the [ffmpeg] config section, WEBVTT_FFMPEG_PATH or
PATH, in that order.

Examples:
  webvtt extract movie.mkv
  webvtt extract movie.mkv --stream 1 -o movie.en.vtt`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}

	extractCmd.Flags().
		IntP("stream", "s", 0, "Index of the subtitle stream to extract (0 = first)")
	return extractCmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	streamIndex, _ := cmd.Flags().GetInt("stream")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		outputPath = strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".vtt"
	}

	tmpDir, err := os.MkdirTemp("", "webvtt-extract-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	rawPath := filepath.Join(tmpDir, "stream.vtt")

	logger.Infow("Extracting subtitles",
		"video", videoPath,
		"output", outputPath,
		"stream", streamIndex,
	)

	opts := media.ExtractOptions{
		Stream:     streamIndex,
		FFmpegPath: cfg.FFmpeg.Path,
	}
	logger.Debugw("Running ffmpeg", "args", media.Args(videoPath, rawPath, opts))
	if err := media.ExtractSubtitles(cmd.Context(), videoPath, rawPath, opts); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	doc, err := vttio.ReadDocument(rawPath)
	if err != nil {
		return fmt.Errorf("ffmpeg produced an unreadable WebVTT file: %w", err)
	}

	if err := writeTo(cmd.OutOrStdout(), outputPath, []byte(render(doc))); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if vttio.IsStdio(outputPath) {
		return nil
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles extracted successfully: %s (%d cues)\n", absOutput, len(doc.Cues))
	return nil
}
