package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mgpai22/webvtt/webvtt"
	"github.com/spf13/cobra"
)

const previewWidth = 40

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a WebVTT file and list its cues",
		Long: `Print a summary of a WebVTT file (header, size, cue count, time span
and fingerprint) followed by one row per cue.

On a terminal the cue list is drawn as a table; when piped it is written as
tab-separated values with a header row.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := inputArg(args)
	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	doc, err := webvtt.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", displayName(path))
	fmt.Fprintf(out, "Size:        %s\n", humanize.Bytes(uint64(len(text))))
	if doc.Header.Description != nil {
		fmt.Fprintf(out, "Description: %s\n", *doc.Header.Description)
	}
	for key, value := range doc.Header.Metadata.All() {
		fmt.Fprintf(out, "Metadata:    %s: %s\n", key, value)
	}
	fmt.Fprintf(out, "Cues:        %s\n", humanize.Comma(int64(len(doc.Cues))))
	if start, end, ok := span(doc); ok {
		fmt.Fprintf(out, "Span:        %s --> %s (%s)\n", start, end, end.Duration()-start.Duration())
	}
	fmt.Fprintf(out, "Fingerprint: %s\n", fingerprint(doc))

	if len(doc.Cues) == 0 {
		return nil
	}
	fmt.Fprintln(out)

	headers := []string{"#", "ID", "START", "END", "DURATION", "SETTINGS", "TEXT"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}
	rows := make([][]string, 0, len(doc.Cues))
	for i, cue := range doc.Cues {
		settings := ""
		if cue.Settings != nil {
			settings = cue.Settings.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cue.Identifier,
			cue.Start.String(),
			cue.End.String(),
			(cue.End.Duration() - cue.Start.Duration()).Round(time.Millisecond).String(),
			settings,
			preview(cue.Payload),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns, isTerminal(out)))
	return nil
}

// span is the earliest start and the latest end over all cues.
func span(doc *webvtt.Document) (webvtt.Timestamp, webvtt.Timestamp, bool) {
	if len(doc.Cues) == 0 {
		return 0, 0, false
	}
	start, end := doc.Cues[0].Start, doc.Cues[0].End
	for _, cue := range doc.Cues[1:] {
		start = min(start, cue.Start)
		end = max(end, cue.End)
	}
	return start, end, true
}

// preview flattens a payload onto one line and shortens it for the table.
func preview(payload string) string {
	s := strings.Join(strings.Fields(payload), " ")
	runes := []rune(s)
	if len(runes) <= previewWidth {
		return s
	}
	return string(runes[:previewWidth-3]) + "..."
}
