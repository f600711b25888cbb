package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagFrames int
	flagDT     float64
	flagKeys   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the final frame",
	Long: `Runs the game without a terminal UI. Every frame feeds the game a fixed
time step; scripted key presses are delivered before the update of the frame
they are scheduled on. The final frame is printed as ASCII followed by a state
summary. With the same seed and script the output is always identical.

Legend:
  o  snake    *  food    #  wall    ~  game-over overlay    .  empty

Key script:
  Comma separated "frame:key" pairs, key one of up, down, left, right, other.

Examples:
  snake simulate --frames 30
  snake simulate --frames 50 --dt 0.05 --keys "3:down,7:other,12:left"
  snake simulate --seed 7 --frames 200 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 100, "Number of frames to simulate")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0.1, "Seconds per frame")
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", `Key script, e.g. "3:down,7:other"`)
}

// keyEvent is a key press scheduled before a given frame's update.
type keyEvent struct {
	Frame int
	Key   core.Key
}

// parseKeyScript parses "frame:key" pairs. Events keep their script order.
func parseKeyScript(script string) ([]keyEvent, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var events []keyEvent
	for _, part := range strings.Split(script, ",") {
		frameStr, name, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("key script entry %q: expected frame:key", part)
		}

		frame, err := strconv.Atoi(strings.TrimSpace(frameStr))
		if err != nil {
			return nil, fmt.Errorf("key script entry %q: bad frame: %w", part, err)
		}
		if frame < 0 {
			return nil, fmt.Errorf("key script entry %q: negative frame", part)
		}

		name = strings.ToLower(strings.TrimSpace(name))
		key := core.ParseKey(name)
		if key == core.KeyOther && name != "other" {
			return nil, fmt.Errorf("key script entry %q: unknown key %q", part, name)
		}

		events = append(events, keyEvent{Frame: frame, Key: key})
	}
	return events, nil
}

// simulate runs the game for frames steps of dt seconds, pressing the
// scripted keys, and logs game-over and restart transitions.
func simulate(game *snake.Game, frames int, dt float64, events []keyEvent, logger *log.Logger) {
	byFrame := make(map[int][]core.Key, len(events))
	for _, ev := range events {
		byFrame[ev.Frame] = append(byFrame[ev.Frame], ev.Key)
	}

	wasOver := game.GameOver()
	restarts := game.Restarts()
	observe := func(frame int) {
		if over := game.GameOver(); over != wasOver {
			if over {
				x, y := game.Snake().HeadPosition()
				logger.Info("game over", "frame", frame, "length", game.Snake().Len(), "head_x", x, "head_y", y)
			}
			wasOver = over
		}
		if r := game.Restarts(); r != restarts {
			logger.Info("restart", "frame", frame, "restarts", r)
			restarts = r
		}
	}

	for frame := 0; frame < frames; frame++ {
		for _, k := range byFrame[frame] {
			logger.Debug("key", "frame", frame, "key", k)
			game.KeyPressed(k)
			observe(frame)
		}
		game.Update(dt)
		observe(frame)
	}
}

// renderASCII draws the game into a fresh screen with the simulate legend.
func renderASCII(game *snake.Game) string {
	p := game.Settings().Palette
	screen := core.NewScreen(game.Width(), game.Height(), p.Background)
	screen.SetLegend(p.Snake, 'o')
	screen.SetLegend(p.Food, '*')
	screen.SetLegend(p.Border, '#')
	game.Draw(screen)
	return screen.String()
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative")
	}
	if flagDT < 0 {
		return fmt.Errorf("--dt must not be negative")
	}

	events, err := parseKeyScript(flagKeys)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game := snake.NewFromSettings(snake.SettingsFromConfig(cfg, flagSeed))
	logger.Debug("simulate", "frames", flagFrames, "dt", flagDT, "keys", len(events), "seed", flagSeed)
	simulate(game, flagFrames, flagDT, events, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderASCII(game))
	fmt.Fprintln(out)
	fmt.Fprintln(out, game.Snapshot())
	return nil
}
