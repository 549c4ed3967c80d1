// bubbles is a terminal Bubble Trouble game: steer the shooter, pop the
// bouncing bubbles, and keep them off your head.
//
// Usage:
//
//	bubbles play             - Play in this terminal
//	bubbles serve            - Start SSH server for remote play
//	bubbles config           - Print the effective game config
//
// Global flags:
//
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--fps <rate>           - Tick rate (default: one frame per timestep)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-trouble/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubbles",
	Short: "Bubble Trouble - pop bouncing bubbles in your terminal",
	Long: `Bubble Trouble is a terminal arcade game. Move the shooter along the
bottom of the field and fire upward to pop bubbles before they hit you.

Available commands:
  play     - Play a game in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  bubbles play
  bubbles play --difficulty hard
  bubbles serve --ssh :2222
  bubbles config --config ./my-bubbles.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = one frame per physics timestep)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game config from flags.
func loadGameConfig() (config.GameConfig, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.GameConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
