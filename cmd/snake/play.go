package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// Rows the TUI draws around the arena: title, status and help.
const chromeRows = 3

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start playing snake in the terminal.

Controls:
  Arrows/WASD/HJKL  - Turn and step
  Any other key     - Step forward
  P/Esc             - Pause
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := cfg.Arena.Width * 2
		needH := cfg.Arena.Height + chromeRows
		if w < needW || h < needH {
			return fmt.Errorf("terminal is %dx%d, the %dx%d arena needs at least %dx%d",
				w, h, cfg.Arena.Width, cfg.Arena.Height, needW, needH)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := snake.NewFromSettings(snake.SettingsFromConfig(cfg, seed))
	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}

	logger.Info("start", "arena_w", cfg.Arena.Width, "arena_h", cfg.Arena.Height, "seed", seed, "fps", flagFPS)
	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
