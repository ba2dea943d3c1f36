package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls (configurable under "controls" in the config file):
  A / Left    - Turn left
  D / Right   - Turn right
  K / Up      - Thrust
  J / Space   - Fire
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a key counts as held until
controls.hold_ms after its last repeat.

Examples:
  asteroids play
  asteroids play --fps 120
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) (err error) {
	// The terminal belongs to the game, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeLog())
	}()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	if err := tui.Run(cfg, runtime, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
