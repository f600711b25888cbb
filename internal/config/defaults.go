package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  30,
			Height: 20,
		},
		Timing: TimingConfig{
			MovingPeriod: 100 * time.Millisecond,
			RestartTime:  time.Second,
		},
		Spawn: SpawnConfig{
			Snake: Cell{X: 2, Y: 2},
			Food:  Cell{X: 6, Y: 4},
		},
		Colors: ColorConfig{
			Snake:      core.ColorGreen,
			Food:       core.ColorRed,
			Border:     core.ColorBlack,
			GameOver:   core.ColorOverlay,
			Background: core.ColorGray,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
