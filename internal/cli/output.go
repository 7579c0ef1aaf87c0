package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/webvtt/internal/vttio"
	"github.com/mgpai22/webvtt/webvtt"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
)

// inputArg returns the single optional file argument, "-" when absent.
func inputArg(args []string) string {
	if len(args) == 0 {
		return vttio.Stdio
	}
	return args[0]
}

// readInput reads path, taking standard input from the command so tests
// can feed it.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if vttio.IsStdio(path) {
		return vttio.ReadFrom(cmd.InOrStdin(), false)
	}
	return vttio.Read(path)
}

func readDocument(cmd *cobra.Command, path string) (*webvtt.Document, error) {
	text, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	doc, err := webvtt.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}
	logger.Debugw("Parsed document",
		"input", displayName(path),
		"cues", len(doc.Cues),
		"metadata", doc.Header.Metadata.Len(),
	)
	return doc, nil
}

// writeOutput writes data to the --output path, or to the command's
// standard output when none is set.
func writeOutput(cmd *cobra.Command, data []byte) error {
	outputPath, _ := cmd.Flags().GetString("output")
	return writeTo(cmd.OutOrStdout(), outputPath, data)
}

func writeTo(stdout io.Writer, path string, data []byte) error {
	if vttio.IsStdio(path) {
		_, err := stdout.Write(data)
		return err
	}
	if err := vttio.Write(path, data); err != nil {
		return err
	}
	logger.Infow("Wrote output file", "output", path, "bytes", len(data))
	return nil
}

// render returns the canonical text of doc, newline-terminated.
func render(doc *webvtt.Document) string {
	s := webvtt.Format(doc)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s
}

// fingerprint is the blake3 digest of the canonical form, so files that
// differ only in layout share a fingerprint.
func fingerprint(doc *webvtt.Document) string {
	sum := blake3.Sum256([]byte(webvtt.Format(doc)))
	return hex.EncodeToString(sum[:])
}

func displayName(path string) string {
	if vttio.IsStdio(path) {
		return "<stdin>"
	}
	return path
}
