package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/stackerterm/pkg/event"
	"github.com/qnkhuat/stackerterm/pkg/game"
	"github.com/rivo/tview"
)

const LogTimeFormat = "3:04:05"

var (
	closedGUI bool

	app    *tview.Application
	board  *tview.Box
	side   *tview.TextView
	recent *tview.TextView

	theme      = ThemeClassic
	restartKey string

	draw   = make(chan event.DrawObject, game.CommandQueueSize)
	events = make(chan interface{}, game.CommandQueueSize)

	logMutex             = new(sync.Mutex)
	wroteFirstLogMessage bool
)

func initGUI() (*tview.Application, error) {
	if activeGame == nil {
		return nil, fmt.Errorf("no active game")
	}

	app = tview.NewApplication()

	board = tview.NewBox().SetDrawFunc(drawPlayerBoard)

	side = tview.NewTextView().
		SetScrollable(false).
		SetTextAlign(tview.AlignLeft).
		SetWrap(false).
		SetWordWrap(false)

	recent = tview.NewTextView().
		SetScrollable(true).
		SetTextAlign(tview.AlignLeft).
		SetWrap(true).
		SetWordWrap(true)

	snap := activeGame.Snapshot()
	w, h := boardSize(snap)

	grid := tview.NewGrid().
		SetBorders(false).
		SetRows(1, h, -1).
		SetColumns(1, w, 2, -1).
		AddItem(board, 1, 1, 1, 1, 0, 0, false).
		AddItem(side, 1, 3, 1, 1, 0, 0, false).
		AddItem(recent, 2, 1, 1, 3, 0, 0, false)

	app.SetRoot(grid, true).SetInputCapture(handleKeypress)

	renderSidePanel()

	return app, nil
}

func drawPlayerBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	drawBoard(screen, x, y, activeGame.Snapshot(), theme, restartKey)

	return x, y, width, height
}

func renderSidePanel() {
	side.SetText(renderSide(activeGame.Player, activeGame.Snapshot(), activeGame.Stats()))
}

// handleDraw redraws the screen. Requests may be dropped when the queue is
// full, so every redraw refreshes the side panel along with the board.
func handleDraw() {
	for range draw {
		app.QueueUpdateDraw(renderSidePanel)
	}
}

func handleEvents() {
	for e := range events {
		switch e := e.(type) {
		case *event.OutcomeEvent:
			logMessage(e.Message)
		case *event.RestartEvent:
			logMessage(e.Message)
		default:
			continue
		}

		activeGame.Draw(event.DrawMessages)
	}
}

func logMessage(message string) {
	logMutex.Lock()
	defer logMutex.Unlock()

	var prefix string
	if !wroteFirstLogMessage {
		wroteFirstLogMessage = true
	} else {
		prefix = "\n"
	}

	recent.Write([]byte(prefix + time.Now().Format(LogTimeFormat) + " " + message))
	recent.ScrollToEnd()
}

func closeGUI() {
	if closedGUI || app == nil {
		return
	}
	closedGUI = true

	app.Stop()
}
