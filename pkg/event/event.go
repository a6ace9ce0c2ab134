package event

import (
	"time"

	"github.com/qnkhuat/stackerterm/pkg/stacker"
)

type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawBoard
	DrawMessages
)

type Event struct {
	Player  string
	Message string
}

// OutcomeEvent is sent when a game ends.
type OutcomeEvent struct {
	Event
	State  stacker.State
	Height int
	Speed  time.Duration
}

// RestartEvent is sent when a new game begins.
type RestartEvent struct {
	Event
}
