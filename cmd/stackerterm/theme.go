package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/stackerterm/pkg/config"
)

// Theme colors the board and the banners around it.
type Theme struct {
	Name       string
	Background tcell.Color
	Border     tcell.Color
	Empty      tcell.Color
	Stack      tcell.Color
	Moving     tcell.Color
	Major      tcell.Color
	Minor      tcell.Color
	Banner     tcell.Color
	Win        tcell.Color
	Lose       tcell.Color
	Text       tcell.Color
}

var ThemeClassic = Theme{
	Name:       "classic",
	Background: tcell.NewHexColor(0x0a0d30),
	Border:     tcell.NewHexColor(0x5a5fa0),
	Empty:      tcell.NewHexColor(0x262b5c),
	Stack:      tcell.NewHexColor(0x8888ff),
	Moving:     tcell.NewHexColor(0xffffff),
	Major:      tcell.NewHexColor(0xd4af37),
	Minor:      tcell.NewHexColor(0xa8a8a8),
	Banner:     tcell.NewHexColor(0x1e1e1e),
	Win:        tcell.NewHexColor(0xffcc00),
	Lose:       tcell.NewHexColor(0xee0000),
	Text:       tcell.NewHexColor(0xffffff),
}

var ThemeMono = Theme{
	Name:       "mono",
	Background: tcell.ColorDefault,
	Border:     tcell.ColorDefault,
	Empty:      tcell.ColorGray,
	Stack:      tcell.ColorSilver,
	Moving:     tcell.ColorWhite,
	Major:      tcell.ColorWhite,
	Minor:      tcell.ColorSilver,
	Banner:     tcell.ColorBlack,
	Win:        tcell.ColorWhite,
	Lose:       tcell.ColorWhite,
	Text:       tcell.ColorDefault,
}

var builtinThemes = []Theme{ThemeClassic, ThemeMono}

// fmtHex writes ColorDefault as "#0" so it survives a round trip through the
// config file instead of being read back as black.
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

func parseColor(s string) tcell.Color {
	if s == "#0" || s == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(s)
}

func (t Theme) Hex() config.ThemeHex {
	return config.ThemeHex{
		Name:       t.Name,
		Background: fmtHex(t.Background),
		Border:     fmtHex(t.Border),
		Empty:      fmtHex(t.Empty),
		Stack:      fmtHex(t.Stack),
		Moving:     fmtHex(t.Moving),
		Major:      fmtHex(t.Major),
		Minor:      fmtHex(t.Minor),
		Banner:     fmtHex(t.Banner),
		Win:        fmtHex(t.Win),
		Lose:       fmtHex(t.Lose),
		Text:       fmtHex(t.Text),
	}
}

func themeFromHex(h config.ThemeHex) Theme {
	return Theme{
		Name:       h.Name,
		Background: parseColor(h.Background),
		Border:     parseColor(h.Border),
		Empty:      parseColor(h.Empty),
		Stack:      parseColor(h.Stack),
		Moving:     parseColor(h.Moving),
		Major:      parseColor(h.Major),
		Minor:      parseColor(h.Minor),
		Banner:     parseColor(h.Banner),
		Win:        parseColor(h.Win),
		Lose:       parseColor(h.Lose),
		Text:       parseColor(h.Text),
	}
}

// findTheme returns the theme called name. Themes from the config file take
// precedence over the built-in ones.
func findTheme(name string, custom []config.ThemeHex) (Theme, error) {
	for _, h := range custom {
		if h.Name == name {
			return themeFromHex(h), nil
		}
	}

	for _, t := range builtinThemes {
		if t.Name == name {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// saveTheme stores t in themes, replacing an entry with the same name.
func saveTheme(themes []config.ThemeHex, t Theme) []config.ThemeHex {
	h := t.Hex()
	for i := range themes {
		if themes[i].Name == h.Name {
			themes[i] = h
			return themes
		}
	}

	return append(themes, h)
}
