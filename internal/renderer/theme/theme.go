// Package theme defines the colors the renderer draws with.
package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/jim/internal/input/mode"
	"github.com/dshills/jim/internal/renderer/backend"
)

// Palette is a set of colors given as "#rrggbb" strings.
type Palette struct {
	Foreground string
	Background string
	Bar        string
	Normal     string
	Insert     string
	Command    string
	Error      string
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{
		Foreground: "#d8dee9",
		Background: "#2e3440",
		Bar:        "#3b4252",
		Normal:     "#81a1c1",
		Insert:     "#a3be8c",
		Command:    "#ebcb8b",
		Error:      "#bf616a",
	}
}

// Theme holds resolved styles.
type Theme struct {
	// Text is used for buffer content. It keeps the terminal's colors.
	Text backend.Style

	// Filler marks rows past the end of the buffer.
	Filler backend.Style

	StatusBar backend.Style
	Message   backend.Style
	Error     backend.Style

	modes map[mode.Mode]backend.Style
}

// New resolves a palette into a theme.
func New(p Palette) (*Theme, error) {
	colors := make(map[string]colorful.Color, 7)
	for name, hex := range map[string]string{
		"foreground": p.Foreground,
		"background": p.Background,
		"bar":        p.Bar,
		"normal":     p.Normal,
		"insert":     p.Insert,
		"command":    p.Command,
		"error":      p.Error,
	} {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme color %s: %w", name, err)
		}
		colors[name] = c
	}

	fg, bg := colors["foreground"], colors["background"]

	t := &Theme{
		Text:      backend.StyleDefault,
		Filler:    backend.StyleDefault.Foreground(toTcell(fg.BlendLab(bg, 0.5))),
		StatusBar: backend.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(colors["bar"])),
		Message:   backend.StyleDefault,
		Error:     backend.StyleDefault.Foreground(toTcell(colors["error"])).Bold(true),
		modes: map[mode.Mode]backend.Style{
			mode.Normal:  badge(colors["normal"]),
			mode.Insert:  badge(colors["insert"]),
			mode.Command: badge(colors["command"]),
		},
	}
	return t, nil
}

// Default returns the theme for DefaultPalette.
func Default() *Theme {
	t, err := New(DefaultPalette())
	if err != nil {
		panic(err)
	}
	return t
}

// Mode returns the style of the mode badge in the status bar.
func (t *Theme) Mode(m mode.Mode) backend.Style {
	if s, ok := t.modes[m]; ok {
		return s
	}
	return t.StatusBar.Bold(true)
}

// badge styles text on a colored background, picking black or white
// text by lightness.
func badge(c colorful.Color) backend.Style {
	return backend.StyleDefault.
		Background(toTcell(c)).
		Foreground(toTcell(Contrast(c))).
		Bold(true)
}

// Contrast returns black for light colors and white for dark ones.
func Contrast(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
