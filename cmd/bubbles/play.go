package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-trouble/internal/core"
	"github.com/vovakirdan/bubble-trouble/internal/games/bubbles"
	"github.com/vovakirdan/bubble-trouble/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bubble Trouble",
	Long: `Start a game in the current terminal.

Controls:
  ←/h/a        - Move left
  →/l/d        - Move right
  space/click  - Fire (holding fires once)
  ctrl+s       - Screenshot
  q/ctrl+c     - Quit

Difficulty options:
  easy   - 5 health, slower bubbles
  normal - Default health and speed
  hard   - 2 health, faster bubbles
  fixed  - No speed progression between waves

Examples:
  bubbles play
  bubbles play --difficulty easy
  bubbles play --config ./my-bubbles.yaml --log ./bubbles.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug game events to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	state, err := tui.Run(bubbles.New(gameCfg), cfg, tui.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if state.GameOver {
		fmt.Fprintf(cmd.OutOrStdout(), "Game Over! Your score: %d\n", state.Score)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Your score: %d\n", state.Score)
	}
	return nil
}

// openLogger returns a debug logger writing to path, or a discarding one
// when path is empty. Stderr belongs to the TUI while it runs.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "bubbles",
	})
	return logger, func() { _ = f.Close() }, nil
}
