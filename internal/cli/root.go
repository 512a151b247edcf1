package cli

import (
	"fmt"

	"github.com/mgpai22/chunkify/internal/chunk"
	"github.com/mgpai22/chunkify/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chunkify",
	Short: "Print ffmpeg commands that split a recording into 30s chunks",
	Long: `Chunkify prints one ffmpeg command per 30-second chunk of discours.mp3.

Nothing is executed; pipe the output into a shell to cut the audio.

Examples:
  chunkify
  chunkify | sh
  chunkify -v > split.sh`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runPlan,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func runPlan(cmd *cobra.Command, args []string) error {
	plan := chunk.DefaultPlan()

	logger.Infow("Generating chunk plan",
		"input", plan.Input,
		"total", plan.Total.String(),
		"max_chunks", plan.MaxChunks,
	)

	n, err := plan.WriteTo(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to print chunk plan: %w", err)
	}

	logger.Debugw("Chunk plan written",
		"chunks", plan.Count(),
		"bytes", n,
	)

	return nil
}
