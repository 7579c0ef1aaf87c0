package cli

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newNumberCmd() *cobra.Command {
	numberCmd := &cobra.Command{
		Use:   "number [file]",
		Short: "Give every cue an identifier",
		Long: `Assign identifiers to cues that have none. Cues are numbered from 1 in
document order, or given random UUIDs with --uuid. Existing identifiers are
kept unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNumber,
	}

	numberCmd.Flags().
		Bool("uuid", false, "Use random UUIDs instead of sequence numbers")
	numberCmd.Flags().
		Bool("force", false, "Replace existing identifiers")
	return numberCmd
}

func runNumber(cmd *cobra.Command, args []string) error {
	useUUID, _ := cmd.Flags().GetBool("uuid")
	force, _ := cmd.Flags().GetBool("force")

	doc, err := readDocument(cmd, inputArg(args))
	if err != nil {
		return err
	}

	assigned := 0
	for i := range doc.Cues {
		cue := &doc.Cues[i]
		if cue.Identifier != "" && !force {
			continue
		}
		if useUUID {
			cue.Identifier = uuid.NewString()
		} else {
			cue.Identifier = strconv.Itoa(i + 1)
		}
		assigned++
	}
	logger.Infow("Numbered cues", "assigned", assigned, "cues", len(doc.Cues))

	return writeOutput(cmd, []byte(render(doc)))
}
