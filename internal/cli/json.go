package cli

import (
	"fmt"

	"github.com/mgpai22/webvtt/webvtt"
	"github.com/spf13/cobra"
)

func newToJSONCmd() *cobra.Command {
	toJSONCmd := &cobra.Command{
		Use:   "to-json [file]",
		Short: "Convert a WebVTT file to JSON",
		Long: `Convert a WebVTT file to a JSON document with a header (description and
ordered metadata) and a cue list. Timestamps and settings are written in
their WebVTT text form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runToJSON,
	}

	toJSONCmd.Flags().
		Bool("indent", false, "Indent the JSON output")
	return toJSONCmd
}

func runToJSON(cmd *cobra.Command, args []string) error {
	indent, _ := cmd.Flags().GetBool("indent")

	doc, err := readDocument(cmd, inputArg(args))
	if err != nil {
		return err
	}
	data, err := webvtt.MarshalJSON(doc, indent)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return writeOutput(cmd, append(data, '\n'))
}

func newFromJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-json [file]",
		Short: "Convert JSON produced by to-json back to WebVTT",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFromJSON,
	}
}

func runFromJSON(cmd *cobra.Command, args []string) error {
	path := inputArg(args)
	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	doc, err := webvtt.UnmarshalJSON([]byte(text))
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	return writeOutput(cmd, []byte(render(doc)))
}
