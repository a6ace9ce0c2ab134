package stacker

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultColumns        = 7
	DefaultRows           = 15
	DefaultStartingWidth  = 3
	DefaultInitialSpeed   = 400 * time.Millisecond
	DefaultMinSpeed       = 100 * time.Millisecond
	DefaultSpeedDecrement = 15 * time.Millisecond
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the static parameters of a game. It never changes while a
// game is in progress.
type Config struct {
	Columns       int `yaml:"columns" json:"columns"`
	Rows          int `yaml:"rows" json:"rows"`
	StartingWidth int `yaml:"startingWidth" json:"startingWidth"`

	InitialSpeed   time.Duration `yaml:"initialSpeed" json:"initialSpeed"`
	MinSpeed       time.Duration `yaml:"minSpeed" json:"minSpeed"`
	SpeedDecrement time.Duration `yaml:"speedDecrement" json:"speedDecrement"`
}

func DefaultConfig() Config {
	return Config{
		Columns:        DefaultColumns,
		Rows:           DefaultRows,
		StartingWidth:  DefaultStartingWidth,
		InitialSpeed:   DefaultInitialSpeed,
		MinSpeed:       DefaultMinSpeed,
		SpeedDecrement: DefaultSpeedDecrement,
	}
}

// Validate reports the first problem found in c. The returned error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0:
		return invalid("columns must be positive, got %d", c.Columns)
	case c.Rows < 2:
		return invalid("rows must be at least 2, got %d", c.Rows)
	case c.StartingWidth <= 0:
		return invalid("starting width must be positive, got %d", c.StartingWidth)
	case c.StartingWidth > c.Columns:
		return invalid("starting width %d exceeds %d columns", c.StartingWidth, c.Columns)
	case c.InitialSpeed <= 0:
		return invalid("initial speed must be positive, got %s", c.InitialSpeed)
	case c.MinSpeed <= 0:
		return invalid("minimum speed must be positive, got %s", c.MinSpeed)
	case c.MinSpeed > c.InitialSpeed:
		return invalid("minimum speed %s is slower than initial speed %s", c.MinSpeed, c.InitialSpeed)
	case c.SpeedDecrement < 0:
		return invalid("speed decrement must not be negative, got %s", c.SpeedDecrement)
	}

	return nil
}

// seedColumns returns the starting width centered in the grid.
func (c Config) seedColumns() []int {
	start := (c.Columns - c.StartingWidth) / 2

	cols := make([]int, c.StartingWidth)
	for i := range cols {
		cols[i] = start + i
	}

	return cols
}

func invalid(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, a...))
}
