package stacker

import (
	"strconv"
	"strings"
)

type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return strconv.Itoa(int(s))
	}
}

func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}

	return "right"
}

// Row is a settled entry of the stack.
type Row struct {
	Index   int   `json:"rowIndex"`
	Columns []int `json:"occupiedColumns"`
}

func (r Row) Width() int {
	return len(r.Columns)
}

func (r Row) Contains(col int) bool {
	for _, c := range r.Columns {
		if c == col {
			return true
		}
	}

	return false
}

func (r Row) Copy() Row {
	return Row{Index: r.Index, Columns: copyColumns(r.Columns)}
}

func (r Row) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.Index))
	b.WriteRune(':')
	b.WriteString(columnsString(r.Columns))

	return b.String()
}

// Block is the moving block travelling on the row above the stack.
type Block struct {
	Row       int       `json:"rowIndex"`
	Columns   []int     `json:"occupiedColumns"`
	Direction Direction `json:"direction"`
}

func (b Block) Width() int {
	return len(b.Columns)
}

func (b Block) Contains(col int) bool {
	for _, c := range b.Columns {
		if c == col {
			return true
		}
	}

	return false
}

// Bounds returns the lowest and highest occupied column.
func (b Block) Bounds() (int, int) {
	minCol, maxCol := b.Columns[0], b.Columns[0]
	for _, c := range b.Columns[1:] {
		if c < minCol {
			minCol = c
		}
		if c > maxCol {
			maxCol = c
		}
	}

	return minCol, maxCol
}

func (b Block) Copy() *Block {
	return &Block{Row: b.Row, Columns: copyColumns(b.Columns), Direction: b.Direction}
}

func (b Block) String() string {
	return strconv.Itoa(b.Row) + ":" + columnsString(b.Columns) + " " + b.Direction.String()
}

// overlap returns the columns of a also present in b, keeping a's order.
func overlap(a []int, b []int) []int {
	var cols []int
	for _, c := range a {
		for _, o := range b {
			if c == o {
				cols = append(cols, c)
				break
			}
		}
	}

	return cols
}

func copyColumns(cols []int) []int {
	if cols == nil {
		return nil
	}

	c := make([]int, len(cols))
	copy(c, cols)

	return c
}

func columnsString(cols []int) string {
	var b strings.Builder
	b.WriteRune('[')
	for i, c := range cols {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteRune(']')

	return b.String()
}
