package stacker

import (
	"strings"
	"time"
)

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Stack   []Row  `json:"stackRows"`
	Moving  *Block `json:"movingBlock,omitempty"`

	Speed time.Duration `json:"speed"`
	State State         `json:"state"`
}

type Cell int

const (
	CellEmpty Cell = iota
	CellStack
	CellMoving
)

func (c Cell) Rune() rune {
	switch c {
	case CellEmpty:
		return '·'
	case CellStack, CellMoving:
		return '█'
	default:
		return '?'
	}
}

// Cell classifies the grid position (col, row). Row 0 is the bottom row.
func (s Snapshot) Cell(col int, row int) Cell {
	if col < 0 || col >= s.Columns || row < 0 || row >= s.Rows {
		return CellEmpty
	}

	if s.Moving != nil && s.Moving.Row == row && s.Moving.Contains(col) {
		return CellMoving
	}

	if row < len(s.Stack) && s.Stack[row].Index == row {
		if s.Stack[row].Contains(col) {
			return CellStack
		}
		return CellEmpty
	}

	for _, r := range s.Stack {
		if r.Index == row && r.Contains(col) {
			return CellStack
		}
	}

	return CellEmpty
}

// Height returns the number of rows stacked on top of the seed row.
func (s Snapshot) Height() int {
	if len(s.Stack) == 0 {
		return 0
	}

	return len(s.Stack) - 1
}

// Top returns the highest settled row, or an empty Row when there is none.
func (s Snapshot) Top() Row {
	if len(s.Stack) == 0 {
		return Row{}
	}
	return s.Stack[len(s.Stack)-1]
}

// Render draws the grid as text, top row first.
func (s Snapshot) Render() string {
	var b strings.Builder

	for y := s.Rows - 1; y >= 0; y-- {
		for x := 0; x < s.Columns; x++ {
			b.WriteRune(s.Cell(x, y).Rune())
		}

		if y == 0 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}
