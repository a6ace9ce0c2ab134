package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/stackerterm/pkg/config"
	"github.com/qnkhuat/stackerterm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a    event.GameAction
	quit bool
}

var keybindings []*Keybinding

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if b.k == tcell.KeyRune {
		return ev.Key() == tcell.KeyRune && ev.Rune() == b.r
	}

	return ev.Key() == b.k
}

// parseKey accepts a single character, "Space", or a tcell key name such as
// "Enter", "Esc" or "Ctrl-C".
func parseKey(name string) (tcell.Key, rune, error) {
	if name == "" {
		return 0, 0, fmt.Errorf("empty key name")
	}

	if strings.EqualFold(name, "space") {
		return tcell.KeyRune, ' ', nil
	}

	if r := []rune(name); len(r) == 1 {
		return tcell.KeyRune, r[0], nil
	}

	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, 0, nil
		}
	}

	return 0, 0, fmt.Errorf("unknown key %q", name)
}

func parseKeybindings(keys config.Keys) ([]*Keybinding, error) {
	var binds []*Keybinding

	add := func(names []string, a event.GameAction, quit bool) error {
		for _, name := range names {
			k, r, err := parseKey(name)
			if err != nil {
				return err
			}

			binds = append(binds, &Keybinding{k: k, r: r, a: a, quit: quit})
		}
		return nil
	}

	if err := add(keys.Drop, event.ActionDrop, false); err != nil {
		return nil, err
	}
	if err := add(keys.Restart, event.ActionRestart, false); err != nil {
		return nil, err
	}
	if err := add(keys.Quit, event.ActionUnknown, true); err != nil {
		return nil, err
	}

	return binds, nil
}

func handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	for _, bind := range keybindings {
		if !bind.matches(ev) {
			continue
		}

		if bind.quit {
			go func() {
				done <- true
			}()
			return nil
		}

		activeGame.ProcessAction(bind.a)
		return nil
	}

	return ev
}
