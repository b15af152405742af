package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jim/internal/input/key"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(20, 5)
	return term, screen
}

// nextEvent polls past resize events, which the screen may post on its own.
func nextEvent(t *testing.T, term *Terminal) Event {
	t.Helper()
	for i := 0; i < 10; i++ {
		ev := term.PollEvent()
		if ev.Type != EventResize {
			return ev
		}
	}
	t.Fatal("no event after resizes")
	return Event{}
}

func TestPollKeyConversion(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want key.Event
	}{
		{"rune", tcell.KeyRune, 'a', tcell.ModNone, key.Rune('a')},
		{"shifted rune", tcell.KeyRune, 'A', tcell.ModShift, key.Rune('A')},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, key.Escape},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, key.Enter},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, key.Tab},
		{"backspace", tcell.KeyBackspace2, 0, tcell.ModNone, key.Backspace},
		{"ctrl letter", tcell.KeyCtrlN, 0, tcell.ModCtrl, key.NewRuneEvent('n', key.ModCtrl)},
		{"arrow", tcell.KeyUp, 0, tcell.ModNone, key.Special(key.KeyUp)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, screen := newSimTerminal(t)
			screen.InjectKey(tt.key, tt.r, tt.mod)

			ev := nextEvent(t, term)
			if ev.Type != EventKey {
				t.Fatalf("expected key event, got %v", ev.Type)
			}
			if ev.Key != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ev.Key)
			}
		})
	}
}

func TestInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Interrupt()

	if ev := nextEvent(t, term); ev.Type != EventInterrupt {
		t.Errorf("expected interrupt, got %v", ev.Type)
	}
}

func TestSetCell(t *testing.T) {
	term, _ := newSimTerminal(t)
	style := StyleDefault.Bold(true)

	term.SetCell(2, 1, 'x', nil, style)
	term.Show()

	r, got := term.Cell(2, 1)
	if r != 'x' {
		t.Errorf("expected 'x', got %q", r)
	}
	if got != style {
		t.Error("style not kept")
	}

	term.Clear()
	if r, _ := term.Cell(2, 1); r != ' ' {
		t.Errorf("expected blank after clear, got %q", r)
	}
}

func TestSize(t *testing.T) {
	term, _ := newSimTerminal(t)
	if w, h := term.Size(); w != 20 || h != 5 {
		t.Errorf("expected 20x5, got %dx%d", w, h)
	}
}
