package main

import (
	"github.com/spf13/cobra"

	"github.com/Jx2f/KeyHunter/internal/config"
)

// depthCmd represents the depth command
var depthCmd = &cobra.Command{
	Use:   "depth [payload]",
	Short: "Walk the key stream of one seed until a key matches",
	Long: `Walk the key stream of one millisecond seed, one residue class per
worker, until a key matches or the search is interrupted. For example:
  keyhunter depth --seed=26242 --threads=16 fb3340b47214cc1e53e6d8e6652ef038`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return search(config.StrategyDepth, args)
	},
}

func init() {
	rootCmd.AddCommand(depthCmd)

	d := config.DefaultConfig.Search
	flags := depthCmd.Flags()
	flags.Int64("seed", d.Seed, "millisecond seed of the key stream")
	flags.Uint64("max-depth", d.MaxDepth, "stop after this many stream positions, 0 searches forever")
	flags.Uint64("progress-draws", d.ProgressDraws, "draws per worker between progress lines, 0 disables")

	bindFlags(depthCmd, map[string]string{
		"search.seed":          "seed",
		"search.maxDepth":      "max-depth",
		"search.progressDraws": "progress-draws",
	}, false)
}
