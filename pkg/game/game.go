// Package game runs a stacker engine for a single player: it owns the tick
// scheduler and serializes every call into the engine.
package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/qnkhuat/stackerterm/pkg/event"
	"github.com/qnkhuat/stackerterm/pkg/stacker"
	"go.uber.org/zap"
)

// Stats are kept for the lifetime of a Game and reset by nothing.
type Stats struct {
	Played int
	Won    int
	Best   int
}

type Game struct {
	Player string

	engine *stacker.Engine
	stats  Stats

	draw   chan<- event.DrawObject
	events chan<- interface{}
	log    *zap.Logger

	reschedule chan struct{}
	cancel     context.CancelFunc
	done       chan struct{}

	*sync.Mutex
}

// NewGame validates c and returns a game ready to Start. draw and events may
// be nil.
func NewGame(c stacker.Config, player string, draw chan<- event.DrawObject, events chan<- interface{}, logger *zap.Logger) (*Game, error) {
	e, err := stacker.NewEngine(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Game{
		Player:     Nickname(player),
		engine:     e,
		stats:      Stats{Played: 1},
		draw:       draw,
		events:     events,
		reschedule: make(chan struct{}, 1),
		Mutex:      new(sync.Mutex),
	}
	g.log = logger.With(zap.String("player", g.Player))

	return g, nil
}

// Start runs the tick scheduler until ctx is done or Stop is called.
func (g *Game) Start(ctx context.Context) {
	g.Lock()
	defer g.Unlock()

	if g.cancel != nil {
		return
	}

	ctx, g.cancel = context.WithCancel(ctx)
	g.done = make(chan struct{})

	go g.handleTick(ctx, g.engine.Speed(), g.done)

	g.log.Info("game started", zap.Int("columns", g.engine.Config().Columns), zap.Int("rows", g.engine.Config().Rows))
	g.Draw(event.DrawAll)
}

// Stop ends the scheduler and waits for it to exit.
func (g *Game) Stop() {
	g.Lock()
	cancel, done := g.cancel, g.done
	g.cancel = nil
	g.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// handleTick is the only caller of Engine.Tick. The ticker follows the
// engine speed and is stopped while the game is over.
func (g *Game) handleTick(ctx context.Context, speed time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(speed)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-g.reschedule:
			g.Lock()
			speed, state := g.engine.Speed(), g.engine.State()
			g.Unlock()

			if state.Terminal() {
				ticker.Stop()
				continue
			}

			ticker.Reset(speed)
		case <-ticker.C:
			g.Lock()
			moved := g.engine.Tick()
			g.Unlock()

			if moved {
				g.Draw(event.DrawBoard)
			}
		}
	}
}

func (g *Game) ProcessAction(a event.GameAction) {
	g.Lock()
	defer g.Unlock()

	switch a {
	case event.ActionDrop:
		g.dropL()
	case event.ActionRestart:
		g.restartL()
	default:
		g.log.Debug("ignoring action", zap.Stringer("action", a))
	}
}

func (g *Game) dropL() {
	result := g.engine.Drop()
	if !result.Accepted {
		return
	}

	g.log.Debug("dropped",
		zap.Stringer("row", result.Row),
		zap.Int("trimmed", result.Trimmed),
		zap.Stringer("state", result.State),
		zap.Duration("speed", g.engine.Speed()))

	if result.State.Terminal() {
		g.finishL(result.State)
	}

	g.scheduleL()
	g.Draw(event.DrawAll)
}

func (g *Game) finishL(state stacker.State) {
	s := g.engine.Snapshot()

	height := s.Height()
	if height > g.stats.Best {
		g.stats.Best = height
	}
	if state == stacker.StateWon {
		g.stats.Won++
	}

	msg := fmt.Sprintf("%s %s at height %d", g.Player, strings.ToLower(state.String()), height)

	g.log.Info("game over",
		zap.Stringer("state", state),
		zap.Int("height", height),
		zap.Duration("speed", s.Speed))

	g.send(&event.OutcomeEvent{
		Event:  event.Event{Player: g.Player, Message: msg},
		State:  state,
		Height: height,
		Speed:  s.Speed,
	})
}

func (g *Game) restartL() {
	g.engine.Restart()
	g.stats.Played++

	g.log.Debug("restarted", zap.Int("played", g.stats.Played))

	g.send(&event.RestartEvent{Event: event.Event{Player: g.Player, Message: "New game"}})

	g.scheduleL()
	g.Draw(event.DrawAll)
}

func (g *Game) scheduleL() {
	select {
	case g.reschedule <- struct{}{}:
	default:
	}
}

func (g *Game) send(e interface{}) {
	if g.events == nil {
		return
	}

	select {
	case g.events <- e:
	default:
		g.log.Warn("event queue full, dropping event", zap.Any("event", e))
	}
}

// Draw requests a redraw without blocking. The request is dropped when the
// queue is full; readers must treat every DrawObject as a full redraw.
func (g *Game) Draw(o event.DrawObject) {
	if g.draw == nil {
		return
	}

	select {
	case g.draw <- o:
	default:
	}
}

func (g *Game) Snapshot() stacker.Snapshot {
	g.Lock()
	defer g.Unlock()

	return g.engine.Snapshot()
}

func (g *Game) Stats() Stats {
	g.Lock()
	defer g.Unlock()

	return g.stats
}
