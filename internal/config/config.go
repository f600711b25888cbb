// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinArenaSize is the smallest width or height that leaves a playable interior.
const MinArenaSize = 5

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Timing TimingConfig `yaml:"timing"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Colors ColorConfig  `yaml:"colors"`
}

// ArenaConfig defines the arena size in grid cells, border included.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the two timers that drive the game.
type TimingConfig struct {
	MovingPeriod time.Duration `yaml:"moving_period"`
	RestartTime  time.Duration `yaml:"restart_time"`
}

// Cell is a grid coordinate in a config file.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts the cell to a core.Point.
func (c Cell) Point() core.Point {
	return core.Pt(c.X, c.Y)
}

// SpawnConfig defines where the snake head and the first food appear on start
// and on every restart.
type SpawnConfig struct {
	Snake Cell `yaml:"snake"`
	Food  Cell `yaml:"food"`
}

// ColorConfig defines the palette. Colors are "#rrggbb" or "#rrggbbaa".
type ColorConfig struct {
	Snake      core.Color `yaml:"snake"`
	Food       core.Color `yaml:"food"`
	Border     core.Color `yaml:"border"`
	GameOver   core.Color `yaml:"game_over"`
	Background core.Color `yaml:"background"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	w, h := c.Arena.Width, c.Arena.Height
	if w < MinArenaSize || h < MinArenaSize {
		return fmt.Errorf("config: arena %dx%d is too small, need at least %dx%d", w, h, MinArenaSize, MinArenaSize)
	}
	if c.Timing.MovingPeriod <= 0 {
		return fmt.Errorf("config: moving_period must be positive, got %s", c.Timing.MovingPeriod)
	}
	if c.Timing.RestartTime <= 0 {
		return fmt.Errorf("config: restart_time must be positive, got %s", c.Timing.RestartTime)
	}

	interior := core.NewRect(0, 0, w, h).Inset(1)

	// The snake starts three cells long, trailing to the left of its head. Only
	// the head has to be clear of the border; the tail may start on a wall.
	head := c.Spawn.Snake
	if !interior.Contains(head.X, head.Y) || head.X-2 < 0 {
		return fmt.Errorf("config: snake spawn (%d,%d) does not fit inside the arena", head.X, head.Y)
	}

	food := c.Spawn.Food
	if !interior.Contains(food.X, food.Y) {
		return fmt.Errorf("config: food spawn (%d,%d) is outside the arena interior", food.X, food.Y)
	}
	if food.Y == head.Y && food.X <= head.X && food.X >= head.X-2 {
		return fmt.Errorf("config: food spawn (%d,%d) overlaps the snake", food.X, food.Y)
	}
	return nil
}
