package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-trouble/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration that play and serve would use, after the
config search order and the --difficulty preset are applied.

Search order:
  1. --config path
  2. ~/.bubbles/configs/bubbles.yaml
  3. ./configs/bubbles.yaml
  4. Built-in defaults

Examples:
  bubbles config > ~/.bubbles/configs/bubbles.yaml
  bubbles config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}
		return config.Encode(cmd.OutOrStdout(), cfg)
	},
}
