package game

import (
	"context"
	"testing"
	"time"

	"github.com/qnkhuat/stackerterm/pkg/event"
	"github.com/qnkhuat/stackerterm/pkg/stacker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() stacker.Config {
	c := stacker.DefaultConfig()
	c.InitialSpeed = 5 * time.Millisecond
	c.MinSpeed = time.Millisecond
	c.SpeedDecrement = time.Millisecond

	return c
}

func newTestGame(t *testing.T, c stacker.Config) (*Game, chan event.DrawObject, chan interface{}) {
	t.Helper()

	draw := make(chan event.DrawObject, CommandQueueSize)
	events := make(chan interface{}, CommandQueueSize)

	g, err := NewGame(c, "tester", draw, events, nil)
	require.NoError(t, err)

	return g, draw, events
}

func TestNewGameInvalidConfig(t *testing.T) {
	c := stacker.DefaultConfig()
	c.Rows = 0

	_, err := NewGame(c, "tester", nil, nil, nil)
	assert.ErrorIs(t, err, stacker.ErrInvalidConfig)
}

func TestGameTicks(t *testing.T) {
	g, draw, _ := newTestGame(t, fastConfig())

	g.Start(context.Background())
	defer g.Stop()

	assert.Equal(t, event.DrawAll, <-draw)

	assert.Eventually(t, func() bool {
		s := g.Snapshot()
		return s.Moving != nil && s.Moving.Columns[0] != 2
	}, time.Second, time.Millisecond)
}

func TestGameStopsOnContext(t *testing.T) {
	g, _, _ := newTestGame(t, fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	g.Start(ctx)
	cancel()

	select {
	case <-g.done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestGameLoss(t *testing.T) {
	c := stacker.DefaultConfig()
	c.StartingWidth = 1

	g, draw, events := newTestGame(t, c)

	g.engine.Tick()
	g.ProcessAction(event.ActionDrop)

	s := g.Snapshot()
	assert.Equal(t, stacker.StateLost, s.State)
	assert.Nil(t, s.Moving)
	assert.Equal(t, event.DrawAll, <-draw)

	require.Len(t, events, 1)
	outcome, ok := (<-events).(*event.OutcomeEvent)
	require.True(t, ok)
	assert.Equal(t, stacker.StateLost, outcome.State)
	assert.Equal(t, 0, outcome.Height)
	assert.Equal(t, "tester", outcome.Player)
	assert.Equal(t, "tester lost at height 0", outcome.Message)

	g.ProcessAction(event.ActionDrop)
	assert.Equal(t, s, g.Snapshot())
	assert.Empty(t, events)
}

func TestGameWin(t *testing.T) {
	c := stacker.DefaultConfig()
	c.Rows = 3

	g, _, events := newTestGame(t, c)

	g.ProcessAction(event.ActionDrop)
	g.ProcessAction(event.ActionDrop)

	s := g.Snapshot()
	assert.Equal(t, stacker.StateWon, s.State)
	assert.Len(t, s.Stack, 3)

	outcome := (<-events).(*event.OutcomeEvent)
	assert.Equal(t, stacker.StateWon, outcome.State)
	assert.Equal(t, 2, outcome.Height)

	assert.Equal(t, Stats{Played: 1, Won: 1, Best: 2}, g.Stats())
}

func TestGameRestartResumesTicking(t *testing.T) {
	c := fastConfig()
	c.StartingWidth = 1

	g, _, events := newTestGame(t, c)

	g.Lock()
	g.engine.Tick()
	g.Unlock()
	g.ProcessAction(event.ActionDrop)
	require.Equal(t, stacker.StateLost, g.Snapshot().State)

	g.Start(context.Background())
	defer g.Stop()

	g.ProcessAction(event.ActionRestart)

	s := g.Snapshot()
	assert.Equal(t, stacker.StatePlaying, s.State)
	assert.Len(t, s.Stack, 1)

	assert.Eventually(t, func() bool {
		s := g.Snapshot()
		return s.Moving != nil && s.Moving.Columns[0] != 3
	}, time.Second, time.Millisecond)

	<-events
	_, ok := (<-events).(*event.RestartEvent)
	assert.True(t, ok)
	assert.Equal(t, 2, g.Stats().Played)
}

func TestGameSpeedFollowsDrops(t *testing.T) {
	g, _, _ := newTestGame(t, stacker.DefaultConfig())

	g.ProcessAction(event.ActionDrop)
	g.ProcessAction(event.ActionDrop)

	assert.Equal(t, 370*time.Millisecond, g.Snapshot().Speed)
	assert.Len(t, g.reschedule, 1)
}

func TestGameIgnoresUnknownAction(t *testing.T) {
	g, draw, _ := newTestGame(t, stacker.DefaultConfig())
	before := g.Snapshot()

	g.ProcessAction(event.ActionUnknown)

	assert.Equal(t, before, g.Snapshot())
	assert.Empty(t, draw)
}
