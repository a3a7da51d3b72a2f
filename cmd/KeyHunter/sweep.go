package main

import (
	"github.com/spf13/cobra"

	"github.com/Jx2f/KeyHunter/internal/config"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep [payload]",
	Short: "Try every key window of every millisecond seed in a time range",
	Long: `Try every key window of every millisecond seed in a time range.
The payload is the first 16 bytes of the second packet sent by the login
server, without the 0060 prefix, as 32 hex digits. For example:
  keyhunter sweep --start-second=0 --end-second=60 f136f3392042f4cf3bf6b9cd6d79df94`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return search(config.StrategyOffset, args)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	d := config.DefaultConfig.Search
	flags := sweepCmd.Flags()
	flags.Int64("start-second", d.StartSecond, "start of the seed range in seconds")
	flags.Int64("end-second", d.EndSecond, "end of the seed range in seconds, exclusive")
	flags.Int("key-depth", d.KeyDepth, "key characters generated per seed")
	flags.Int("progress-batches", d.ProgressBatches, "batches between progress lines, 0 disables")

	bindFlags(sweepCmd, map[string]string{
		"search.startSecond":     "start-second",
		"search.endSecond":       "end-second",
		"search.keyDepth":        "key-depth",
		"search.progressBatches": "progress-batches",
	}, false)
}
