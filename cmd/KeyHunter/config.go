package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jx2f/KeyHunter/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := json.MarshalIndent(config.DefaultConfig, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(p))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
