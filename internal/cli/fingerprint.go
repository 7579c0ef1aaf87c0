package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [file...]",
		Short: "Print a content hash of each file's canonical form",
		Long: `Print a BLAKE3 hash of the canonical form of each WebVTT file.

Files that differ only in layout (timestamp spelling, settings order, blank
lines, line endings, NOTE blocks) share a fingerprint, so the hash can be
used to find duplicate subtitle tracks.`,
		RunE: runFingerprint,
	}
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{inputArg(args)}
	}
	for _, path := range args {
		doc, err := readDocument(cmd, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", fingerprint(doc), displayName(path))
	}
	return nil
}
