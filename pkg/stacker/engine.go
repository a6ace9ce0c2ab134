// Package stacker implements the rules of the arcade stacker: a block
// oscillates along the row above the stack and is dropped onto it, keeping
// only the columns that overlap the row beneath.
//
// An Engine has no timers or goroutines. Callers drive it with Tick, Drop and
// Restart and read state through Snapshot. It is not safe for concurrent use.
package stacker

import "time"

type Engine struct {
	config Config

	stack  []Row
	moving Block
	speed  time.Duration
	state  State
}

// DropResult describes the outcome of a call to Drop.
type DropResult struct {
	// Accepted is false when the game was already over.
	Accepted bool
	// Row is the row added to the stack. It is empty when the drop was lost.
	Row Row
	// Trimmed is the number of moving block columns that missed the stack.
	Trimmed int
	State   State
}

func NewEngine(c Config) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{config: c}
	e.Restart()

	return e, nil
}

func (e *Engine) Config() Config {
	return e.config
}

// Restart returns the engine to the seed row with a fresh moving block above
// it.
func (e *Engine) Restart() {
	seed := e.config.seedColumns()

	e.stack = []Row{{Index: 0, Columns: seed}}
	e.moving = Block{Row: 1, Columns: copyColumns(seed), Direction: Right}
	e.speed = e.config.InitialSpeed
	e.state = StatePlaying
}

// Reconfigure replaces the configuration and restarts. The engine is left
// untouched when c is invalid.
func (e *Engine) Reconfigure(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	e.config = c
	e.Restart()

	return nil
}

// Tick advances the moving block one column, bouncing off the grid edges in
// the same step that reaches them. It reports whether the block moved.
func (e *Engine) Tick() bool {
	if e.state != StatePlaying {
		return false
	}

	minCol, maxCol := e.moving.Bounds()
	dir := e.moving.Direction

	if dir == Right && maxCol >= e.config.Columns-1 {
		dir = Left
	}
	if dir == Left && minCol <= 0 {
		dir = Right
	}

	e.moving.Direction = dir

	// A block as wide as the grid has nowhere to go.
	if (dir == Right && maxCol >= e.config.Columns-1) || (dir == Left && minCol <= 0) {
		return false
	}

	for i := range e.moving.Columns {
		e.moving.Columns[i] += int(dir)
	}

	return true
}

// Drop merges the moving block onto the top of the stack.
func (e *Engine) Drop() DropResult {
	if e.state != StatePlaying {
		return DropResult{State: e.state}
	}

	top := e.stack[len(e.stack)-1]

	cols := overlap(e.moving.Columns, top.Columns)
	if len(cols) == 0 {
		e.state = StateLost

		return DropResult{Accepted: true, Trimmed: e.moving.Width(), State: e.state}
	}

	row := Row{Index: e.moving.Row, Columns: cols}
	e.stack = append(e.stack, row)

	result := DropResult{Accepted: true, Row: row.Copy(), Trimmed: e.moving.Width() - len(cols)}

	if row.Index >= e.config.Rows-1 {
		e.state = StateWon

		result.State = e.state
		return result
	}

	e.moving = Block{Row: row.Index + 1, Columns: copyColumns(cols), Direction: Right}

	e.speed -= e.config.SpeedDecrement
	if e.speed < e.config.MinSpeed {
		e.speed = e.config.MinSpeed
	}

	result.State = e.state
	return result
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Speed() time.Duration {
	return e.speed
}

// Snapshot returns a copy of the current state. Later calls on the engine do
// not affect it.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Columns: e.config.Columns,
		Rows:    e.config.Rows,
		Stack:   make([]Row, len(e.stack)),
		Speed:   e.speed,
		State:   e.state,
	}

	for i, r := range e.stack {
		s.Stack[i] = r.Copy()
	}

	if e.state == StatePlaying {
		s.Moving = e.moving.Copy()
	}

	return s
}
