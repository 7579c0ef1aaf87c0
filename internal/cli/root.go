package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mgpai22/webvtt/internal/config"
	"github.com/mgpai22/webvtt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	logger = logging.Nop()
	cfg    = defaultConfig()
)

func defaultConfig() *config.Config {
	c := config.Default()
	return &c
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webvtt",
		Short: "Parse, check and rewrite WebVTT subtitle files",
		Long: `webvtt reads WebVTT subtitle files, reports precise errors for
malformed input and writes documents back in a canonical form.

Besides formatting and validation it can convert documents to and from
JSON, number cues, translate cue text with an LLM provider and pull
subtitle streams out of media files with ffmpeg.

A file argument of "-" (or none) reads standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")

			loaded, _, _, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			l, err := logging.New(logging.Options{
				Level:   cfg.Logging.Level,
				Format:  cfg.Logging.Format,
				Verbose: verbose,
			})
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	rootCmd.PersistentFlags().
		BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (default: standard output)")

	rootCmd.AddCommand(
		newFmtCmd(),
		newValidateCmd(),
		newInspectCmd(),
		newFingerprintCmd(),
		newToJSONCmd(),
		newFromJSONCmd(),
		newNumberCmd(),
		newTranslateCmd(),
		newExtractCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute runs the command line and cancels in-flight work on SIGINT or
// SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// replaced once the config is loaded
	logger = logging.NewLogger(false)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return err
	}
	return nil
}
