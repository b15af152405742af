package statusline

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/engine/buffer"
	"github.com/dshills/jim/internal/input/mode"
	"github.com/dshills/jim/internal/renderer/backend"
	"github.com/dshills/jim/internal/renderer/theme"
)

func newScreen(t *testing.T, width, height int) *backend.Terminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := backend.NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(width, height)
	return term
}

func rowText(term *backend.Terminal, row, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _ := term.Cell(x, row)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestRenderNormal(t *testing.T) {
	term := newScreen(t, 40, 2)
	s := New(theme.Default())
	s.Resize(40)

	v := editor.View{
		Name:     "main.go",
		Modified: true,
		Cursor:   buffer.Point{Line: 2, Column: 0},
		Mode:     mode.Normal,
		Status:   "saved",
		Buffers:  1,
	}

	if _, ok := s.Render(term, v, 0); ok {
		t.Error("no command cursor expected in normal mode")
	}

	bar := rowText(term, 0, 40)
	if !strings.HasPrefix(bar, " NORMAL  main.go [+]") {
		t.Errorf("unexpected status bar %q", bar)
	}
	if !strings.HasSuffix(bar, "Ln 3, Col 1") {
		t.Errorf("expected position at the right, got %q", bar)
	}
	if got := rowText(term, 1, 40); got != "saved" {
		t.Errorf("expected message, got %q", got)
	}
}

func TestRenderCommandLine(t *testing.T) {
	term := newScreen(t, 40, 2)
	s := New(theme.Default())
	s.Resize(40)

	v := editor.View{Name: "a", Mode: mode.Command, CommandLine: "wq", Status: "hidden"}

	x, ok := s.Render(term, v, 0)
	if !ok || x != 3 {
		t.Errorf("expected command cursor at 3, got %d, %v", x, ok)
	}
	if got := rowText(term, 1, 40); got != ":wq" {
		t.Errorf("expected command line, got %q", got)
	}
	if !strings.HasPrefix(rowText(term, 0, 40), " COMMAND ") {
		t.Error("expected COMMAND badge")
	}
}

func TestRenderErrorMessage(t *testing.T) {
	term := newScreen(t, 20, 2)
	th := theme.Default()
	s := New(th)
	s.Resize(20)

	s.Render(term, editor.View{Name: "a", Status: "write failed", StatusError: true}, 0)

	if _, style := term.Cell(0, 1); style != th.Error {
		t.Error("error message should use the error style")
	}
}

func TestFormatPosition(t *testing.T) {
	tests := []struct {
		v    editor.View
		want string
	}{
		{editor.View{Cursor: buffer.Point{Line: 0, Column: 0}, Buffers: 1}, "Ln 1, Col 1"},
		{editor.View{Cursor: buffer.Point{Line: 4, Column: 9}, Buffers: 3}, "3 buffers  Ln 5, Col 10"},
	}

	for _, tt := range tests {
		if got := FormatPosition(tt.v); got != tt.want {
			t.Errorf("FormatPosition = %q, want %q", got, tt.want)
		}
	}
}

func TestDrawTextStopsAtLimit(t *testing.T) {
	term := newScreen(t, 10, 1)

	end := drawText(term, 0, 0, "日本語", backend.StyleDefault, 5)
	if end != 4 {
		t.Errorf("expected to stop after two wide runes, got %d", end)
	}
}
