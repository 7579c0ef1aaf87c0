package cli

import (
	"fmt"

	"github.com/mgpai22/webvtt/internal/vttio"
	"github.com/mgpai22/webvtt/webvtt"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	fmtCmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Rewrite WebVTT files in canonical form",
		Long: `Parse WebVTT files and print them in canonical form: two-digit hours,
millisecond timestamps, settings in a fixed order and single blank lines
between cues. NOTE blocks are dropped.

Examples:
  webvtt fmt subs.vtt
  webvtt fmt -w a.vtt b.vtt
  webvtt fmt -l *.vtt
  cat subs.vtt | webvtt fmt -o clean.vtt`,
		RunE: runFmt,
	}

	fmtCmd.Flags().
		BoolP("write", "w", false, "Write the result back to the source file")
	fmtCmd.Flags().
		BoolP("list", "l", false, "List files whose formatting differs")
	return fmtCmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	list, _ := cmd.Flags().GetBool("list")

	if !write && !list {
		if len(args) > 1 {
			return fmt.Errorf("formatting several files requires --write or --list")
		}
		doc, err := readDocument(cmd, inputArg(args))
		if err != nil {
			return err
		}
		return writeOutput(cmd, []byte(render(doc)))
	}

	if len(args) == 0 {
		return fmt.Errorf("--write and --list need file arguments")
	}

	for _, path := range args {
		if vttio.IsStdio(path) {
			return fmt.Errorf("--write and --list cannot be used with standard input")
		}
		text, err := vttio.Read(path)
		if err != nil {
			return err
		}
		doc, err := webvtt.Parse(text)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		formatted := render(doc)
		if formatted == text {
			continue
		}
		if list {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		if write {
			if err := vttio.Write(path, []byte(formatted)); err != nil {
				return err
			}
			logger.Infow("Reformatted file", "file", path)
		}
	}
	return nil
}
