package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Default timing, in seconds.
const (
	DefaultMovingPeriod = 0.1
	DefaultRestartTime  = 1.0
)

// Palette holds the colors the game draws with.
type Palette struct {
	Snake      core.Color
	Food       core.Color
	Border     core.Color
	GameOver   core.Color
	Background core.Color // Not drawn by the game; used by screens it draws into
}

// DefaultPalette returns green snake, red food, black walls and a half
// transparent blue game-over overlay.
func DefaultPalette() Palette {
	return Palette{
		Snake:      core.ColorGreen,
		Food:       core.ColorRed,
		Border:     core.ColorBlack,
		GameOver:   core.ColorOverlay,
		Background: core.ColorGray,
	}
}

// Settings are fixed for the lifetime of a Game.
type Settings struct {
	Width, Height int        // Arena size in cells, border included
	MovingPeriod  float64    // Seconds between forced moves
	RestartTime   float64    // Seconds the game-over state lasts
	Start         core.Point // Snake head on start and restart
	InitialFood   core.Point // Food on start and restart
	Palette       Palette
	Seed          int64
}

// DefaultSettings returns the classic settings for a width x height arena.
func DefaultSettings(width, height int) Settings {
	return Settings{
		Width:        width,
		Height:       height,
		MovingPeriod: DefaultMovingPeriod,
		RestartTime:  DefaultRestartTime,
		Start:        core.Pt(2, 2),
		InitialFood:  core.Pt(6, 4),
		Palette:      DefaultPalette(),
	}
}

// SettingsFromConfig converts a loaded config into game settings.
func SettingsFromConfig(cfg config.SnakeConfig, seed int64) Settings {
	return Settings{
		Width:        cfg.Arena.Width,
		Height:       cfg.Arena.Height,
		MovingPeriod: cfg.Timing.MovingPeriod.Seconds(),
		RestartTime:  cfg.Timing.RestartTime.Seconds(),
		Start:        cfg.Spawn.Snake.Point(),
		InitialFood:  cfg.Spawn.Food.Point(),
		Palette: Palette{
			Snake:      cfg.Colors.Snake,
			Food:       cfg.Colors.Food,
			Border:     cfg.Colors.Border,
			GameOver:   cfg.Colors.GameOver,
			Background: cfg.Colors.Background,
		},
		Seed: seed,
	}
}

// Option customises a Game built with New.
type Option func(*Game)

// WithTiming overrides the forced-move period and the restart delay, in seconds.
func WithTiming(movingPeriod, restartTime float64) Option {
	return func(g *Game) {
		g.settings.MovingPeriod = movingPeriod
		g.settings.RestartTime = restartTime
	}
}

// WithPalette overrides the colors.
func WithPalette(p Palette) Option {
	return func(g *Game) {
		g.settings.Palette = p
	}
}

// WithSpawn overrides where the snake head and the first food appear.
func WithSpawn(start, food core.Point) Option {
	return func(g *Game) {
		g.settings.Start = start
		g.settings.InitialFood = food
	}
}

// WithSeed seeds the food placement random source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.settings.Seed = seed
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for food placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}
