package lua

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/jim/internal/dispatcher"
	"github.com/dshills/jim/internal/dispatcher/handlers"
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/engine/store"
	"github.com/dshills/jim/internal/input/key"
	"github.com/dshills/jim/internal/input/keymap"
	"github.com/dshills/jim/internal/input/mode"
)

type testLogger struct {
	lines []string
}

func (l *testLogger) Info(msg string, args ...any) {
	if len(args) > 0 {
		msg = args[0].(string)
	}
	l.lines = append(l.lines, msg)
}

type fixture struct {
	ed  *editor.Editor
	d   *dispatcher.Dispatcher
	rt  *Runtime
	log *testLogger
}

func newFixture(t *testing.T, text string, opts ...StateOption) *fixture {
	t.Helper()
	ed := editor.New(editor.WithStore(store.NewWithFS(store.NewMemFS())))
	ed.OpenString("/f.txt", text)

	km := keymap.Defaults()
	d := dispatcher.New(ed, km, dispatcher.DefaultConfig())
	handlers.RegisterDefaults(d)

	log := &testLogger{}
	rt := NewRuntime(d, km, log, opts...)
	t.Cleanup(func() { rt.Close() })

	return &fixture{ed: ed, d: d, rt: rt, log: log}
}

func (f *fixture) load(t *testing.T, code string) {
	t.Helper()
	if err := f.rt.LoadString(code); err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func (f *fixture) press(t *testing.T, keys string) {
	t.Helper()
	for _, ev := range key.MustParseSequence(keys) {
		if err := f.d.Dispatch(ev); err != nil {
			t.Fatalf("dispatch %v: %v", ev, err)
		}
	}
}

func (f *fixture) text() string {
	return f.ed.Front().Buffer.Text()
}

func TestCommand(t *testing.T) {
	f := newFixture(t, "")
	f.load(t, `jim.command("Hi", function() jim.write("hi") end)`)

	f.press(t, ":Hi<CR>")
	if f.text() != "hi" {
		t.Errorf("expected 'hi', got %q", f.text())
	}
	if !f.ed.Mode().Is(mode.Normal) {
		t.Errorf("expected Normal mode, got %v", f.ed.Mode().Current())
	}
}

func TestNmapFunction(t *testing.T) {
	f := newFixture(t, "abcdef")
	f.load(t, `jim.nmap("Q", function() jim.move_right(2) end)`)

	f.press(t, "Q")
	if col := f.ed.Front().Cursor.Column(); col != 2 {
		t.Errorf("expected column 2, got %d", col)
	}
}

func TestNmapPendingReadsArgument(t *testing.T) {
	f := newFixture(t, "abc")
	f.load(t, `
jim.nmap("r", function()
    jim.delete()
    jim.write(jim.arg())
    jim.move_left(1)
end, true)
`)

	f.press(t, "rX")
	if f.text() != "Xbc" {
		t.Errorf("expected 'Xbc', got %q", f.text())
	}
	if col := f.ed.Front().Cursor.Column(); col != 0 {
		t.Errorf("expected column 0, got %d", col)
	}
}

func TestNmapActionName(t *testing.T) {
	f := newFixture(t, "abc")
	f.load(t, `jim.nmap("L", "cursor.moveLineEnd")`)

	f.press(t, "L")
	if col := f.ed.Front().Cursor.Column(); col != 2 {
		t.Errorf("expected column 2, got %d", col)
	}
}

func TestNmapRejectsBadTarget(t *testing.T) {
	f := newFixture(t, "")
	if err := f.rt.LoadString(`jim.nmap("x", 42)`); err == nil {
		t.Error("expected error for a numeric target")
	}
	if err := f.rt.LoadString(`jim.nmap("", "editor.save")`); err == nil {
		t.Error("expected error for empty keys")
	}
}

func TestStateFunctions(t *testing.T) {
	f := newFixture(t, "one\ntwo")
	f.load(t, `
jim.nmap("Z", function()
    jim.move_down()
    jim.move_right(1)
    local col, line = jim.position()
    jim.status(string.format("%s|%d,%d|%s|%d", jim.line(), col, line, jim.mode(), #jim.text()))
    jim.set_mode("insert")
end)
`)

	f.press(t, "Z")
	if got := f.ed.Status(); got != "two|1,1|normal|7" {
		t.Errorf("unexpected status %q", got)
	}
	if !f.ed.Mode().Is(mode.Insert) {
		t.Errorf("expected Insert mode, got %v", f.ed.Mode().Current())
	}
}

func TestSetModeRejectsUnknown(t *testing.T) {
	f := newFixture(t, "")
	f.load(t, `jim.nmap("Z", function() jim.set_mode("visual") end)`)

	if err := f.d.Dispatch(key.Rune('Z')); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestSaveAndQuit(t *testing.T) {
	f := newFixture(t, "data")
	f.load(t, `
jim.command("S", function()
    local ok, err = jim.save()
    if ok then jim.quit() else jim.status(err) end
end)
`)

	f.press(t, ":S<CR>")
	if !f.ed.Quitting() {
		t.Errorf("expected quit after save, status %q", f.ed.Status())
	}
	got, err := f.ed.Store().Load("/f.txt")
	if err != nil || got != "data" {
		t.Errorf("expected saved content, got %q, %v", got, err)
	}
}

func TestEditorFunctionsNeedContext(t *testing.T) {
	f := newFixture(t, "")
	err := f.rt.LoadString(`jim.line()`)
	if err == nil || !strings.Contains(err.Error(), ErrNoContext.Error()) {
		t.Errorf("expected no-context error, got %v", err)
	}
}

func TestSandbox(t *testing.T) {
	f := newFixture(t, "")

	f.load(t, `assert(io == nil and os == nil and debug == nil)`)
	f.load(t, `local s = require("string"); assert(s.upper("a") == "A")`)

	for _, code := range []string{
		`dofile("/etc/passwd")`,
		`loadstring("return 1")()`,
		`require("os")`,
	} {
		if err := f.rt.LoadString(code); err == nil {
			t.Errorf("expected %q to fail", code)
		}
	}
}

func TestExecutionTimeout(t *testing.T) {
	f := newFixture(t, "", WithExecutionTimeout(50*time.Millisecond))

	err := f.rt.LoadString(`while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("expected ErrExecutionTimeout, got %v", err)
	}
}

func TestPrintGoesToLogger(t *testing.T) {
	f := newFixture(t, "")
	f.load(t, `print("hello", 42)`)

	if len(f.log.lines) != 1 || f.log.lines[0] != "hello\t42" {
		t.Errorf("unexpected log lines %q", f.log.lines)
	}
}

func TestClosedState(t *testing.T) {
	f := newFixture(t, "")
	f.rt.Close()

	if err := f.rt.LoadString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("expected ErrStateClosed, got %v", err)
	}
}
