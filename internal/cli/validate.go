package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/mgpai22/webvtt/internal/check"
	"github.com/mgpai22/webvtt/webvtt"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check WebVTT files for syntax and timing problems",
		Long: `Parse each file and run timing checks on its cues.

Syntax errors report the error kind, the offending fragment and the input
line. Files that parse are checked for cues that end before they start,
zero-length and out-of-order cues, overlaps, empty payloads and duplicate
identifiers. Duration thresholds come from the [check] config section.

Warnings are printed but only fail the run with --strict.

Examples:
  webvtt validate subs.vtt
  webvtt validate --strict *.vtt`,
		RunE: runValidate,
	}

	validateCmd.Flags().
		Bool("strict", false, "Treat warnings as failures")
	return validateCmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	if len(args) == 0 {
		args = []string{inputArg(args)}
	}

	opts := check.Options{
		MinDuration:  time.Duration(cfg.Check.MinDurationMS) * time.Millisecond,
		MaxDuration:  time.Duration(cfg.Check.MaxCueDurationMS) * time.Millisecond,
		AllowOverlap: cfg.Check.AllowOverlap,
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		name := displayName(path)

		text, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		doc, err := webvtt.Parse(text)
		if err != nil {
			failed++
			var pe *webvtt.ParseError
			if errors.As(err, &pe) {
				logger.Debugw("Parse failed",
					"file", name,
					"kind", pe.Kind,
					"fragment", pe.Fragment,
					"line", pe.Line,
				)
			}
			fmt.Fprintf(out, "%s: %v\n", name, err)
			continue
		}

		issues := check.Run(doc, opts)
		for _, issue := range issues {
			fmt.Fprintf(out, "%s: %s\n", name, issue)
		}
		if check.HasErrors(issues) || (strict && len(issues) > 0) {
			failed++
			continue
		}
		fmt.Fprintf(out, "%s: ok (%d cues)\n", name, len(doc.Cues))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
