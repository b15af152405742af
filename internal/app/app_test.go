package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/jim/internal/config"
	"github.com/dshills/jim/internal/engine/store"
	"github.com/dshills/jim/internal/input/key"
	"github.com/dshills/jim/internal/renderer/backend"
)

// fakeBackend feeds queued events and records drawing.
type fakeBackend struct {
	mu     sync.Mutex
	events chan backend.Event
	inited bool
	shut   bool
	shows  int
}

func newFakeBackend(keys string) *fakeBackend {
	seq := key.MustParseSequence(keys)
	b := &fakeBackend{events: make(chan backend.Event, len(seq)+8)}
	for _, k := range seq {
		b.events <- backend.Event{Type: backend.EventKey, Key: k}
	}
	return b
}

func (b *fakeBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inited = true
	return nil
}

func (b *fakeBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shut = true
}

func (b *fakeBackend) Size() (int, int) { return 40, 10 }

func (b *fakeBackend) PollEvent() backend.Event {
	ev, ok := <-b.events
	if !ok {
		return backend.Event{Type: backend.EventClosed}
	}
	return ev
}

func (b *fakeBackend) Interrupt() {
	b.events <- backend.Event{Type: backend.EventInterrupt}
}

func (b *fakeBackend) Clear()                                        {}
func (b *fakeBackend) SetCell(int, int, rune, []rune, backend.Style) {}
func (b *fakeBackend) ShowCursor(int, int)                           {}
func (b *fakeBackend) HideCursor()                                   {}
func (b *fakeBackend) SetCursorStyle(backend.CursorStyle)            {}

func (b *fakeBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

// failingFS fails every read with a non-missing-file error.
type failingFS struct{ *store.MemFS }

func (failingFS) ReadFile(string) ([]byte, error) {
	return nil, &fs.PathError{Op: "open", Path: "x", Err: errors.New("device not ready")}
}

type testEnv struct {
	files  *store.MemFS
	config *store.MemFS
}

func newTestEnv() *testEnv {
	return &testEnv{files: store.NewMemFS(), config: store.NewMemFS()}
}

func (e *testEnv) options(files ...string) Options {
	return Options{
		Files:        files,
		Store:        store.NewWithFS(e.files),
		ConfigLoader: config.NewLoaderWithFS(e.config),
		Logger:       NullLogger,
	}
}

func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func runWith(t *testing.T, app *Application, b *fakeBackend) {
	t.Helper()
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() failed: %v", err)
	}
	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
}

func TestNewApplication(t *testing.T) {
	app := newTestApp(t, newTestEnv().options())

	if app.Config() == nil {
		t.Error("expected config to be initialized")
	}
	if app.Editor() == nil {
		t.Error("expected editor to be initialized")
	}
	if app.Keymap() == nil {
		t.Error("expected keymap to be initialized")
	}
	if app.Dispatcher() == nil {
		t.Error("expected dispatcher to be initialized")
	}
	if app.IsRunning() {
		t.Error("expected IsRunning() to be false before Run()")
	}
	if app.Renderer() != nil {
		t.Error("renderer is created by Run")
	}
}

func TestApplication_OpenFiles(t *testing.T) {
	env := newTestEnv()
	env.files.AddFile("/a.txt", "first")
	env.files.AddFile("/b.txt", "second")

	app := newTestApp(t, env.options("/a.txt", "/b.txt"))

	docs := app.Editor().Documents()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Path() != "/a.txt" || docs[1].Path() != "/b.txt" {
		t.Errorf("expected first file in front, got %s, %s", docs[0].Path(), docs[1].Path())
	}
	if got := app.Editor().Front().Buffer.Text(); got != "first" {
		t.Errorf("expected 'first', got %q", got)
	}
}

func TestApplication_MissingFileIsNew(t *testing.T) {
	app := newTestApp(t, newTestEnv().options("/new.txt"))

	doc := app.Editor().Front()
	if doc.Path() != "/new.txt" || doc.Buffer.Text() != "" {
		t.Errorf("expected empty buffer for /new.txt, got %q %q", doc.Path(), doc.Buffer.Text())
	}
	if !strings.Contains(app.Editor().Status(), "[New File]") {
		t.Errorf("expected new file status, got %q", app.Editor().Status())
	}
}

func TestApplication_LoadErrorIsFatal(t *testing.T) {
	env := newTestEnv()
	opts := env.options("/broken.txt")
	opts.Store = store.NewWithFS(failingFS{store.NewMemFS()})

	_, err := New(opts)
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "editor" {
		t.Fatalf("expected editor InitError, got %v", err)
	}
	if !errors.Is(err, store.ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestApplication_ExplicitConfigMustExist(t *testing.T) {
	opts := newTestEnv().options()
	opts.ConfigPath = "/nope.toml"

	_, err := New(opts)
	if !errors.Is(err, config.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestApplication_RunWithoutBackend(t *testing.T) {
	app := newTestApp(t, newTestEnv().options())

	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
}

func TestApplication_EditSaveQuit(t *testing.T) {
	env := newTestEnv()
	env.files.AddFile("/a.txt", "abc")
	app := newTestApp(t, env.options("/a.txt"))

	b := newFakeBackend("ihi<Esc>:wq<CR>")
	runWith(t, app, b)

	got, err := store.NewWithFS(env.files).Load("/a.txt")
	if err != nil || got != "hiabc" {
		t.Errorf("expected saved 'hiabc', got %q, %v", got, err)
	}
	if !b.inited || !b.shut {
		t.Error("backend should be initialized and shut down")
	}
	if b.shows == 0 {
		t.Error("expected at least one frame")
	}
}

func TestApplication_ActionErrorsReachStatus(t *testing.T) {
	env := newTestEnv()
	env.files.AddFile("/a.txt", "abc")
	env.files.FailWrites = errors.New("disk full")
	app := newTestApp(t, env.options("/a.txt"))

	b := newFakeBackend(":w<CR>")
	close(b.events)
	runWith(t, app, b)

	if !app.Editor().StatusIsError() {
		t.Fatalf("expected error status, got %q", app.Editor().Status())
	}
	if !strings.Contains(app.Editor().Status(), "disk full") {
		t.Errorf("expected cause in status, got %q", app.Editor().Status())
	}
}

func TestApplication_ConfigMappings(t *testing.T) {
	env := newTestEnv()
	env.config.AddFile("/jim.toml", `
[[nmap]]
keys = "Q"
action = "editor.quit"
`)
	opts := env.options()
	opts.ConfigPath = "/jim.toml"
	app := newTestApp(t, opts)

	runWith(t, app, newFakeBackend("Q"))

	if !app.Editor().Quitting() {
		t.Error("expected Q to quit")
	}
}

func TestApplication_UnknownActionIsReported(t *testing.T) {
	env := newTestEnv()
	env.config.AddFile("/jim.toml", `
[[nmap]]
keys = "Q"
action = "editor.qiut"

[[command]]
name = "Q"
action = "editor.qiut"
`)
	opts := env.options()
	opts.ConfigPath = "/jim.toml"
	app := newTestApp(t, opts)

	ed := app.Editor()
	if !ed.StatusIsError() || !strings.Contains(ed.Status(), "editor.qiut") {
		t.Errorf("expected the unknown action on the status line, got %q", ed.Status())
	}
	if strings.Count(ed.Status(), "editor.qiut") != 1 {
		t.Errorf("expected the action to be named once, got %q", ed.Status())
	}
}

func TestApplication_LuaScripts(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "init.lua")
	if err := os.WriteFile(script, []byte(`jim.command("Hello", function() jim.status("hi there") end)`), 0o644); err != nil {
		t.Fatal(err)
	}

	env := newTestEnv()
	env.config.AddFile("/jim.toml", "[lua]\nscripts = ['"+filepath.ToSlash(script)+"']\n")
	opts := env.options()
	opts.ConfigPath = "/jim.toml"
	app := newTestApp(t, opts)

	b := newFakeBackend(":Hello<CR>")
	close(b.events)
	runWith(t, app, b)

	if got := app.Editor().Status(); got != "hi there" {
		t.Errorf("expected status from script, got %q", got)
	}
}

func TestApplication_BadScriptIsReported(t *testing.T) {
	env := newTestEnv()
	env.config.AddFile("/jim.toml", "[lua]\nscripts = ['/does/not/exist.lua']\n")
	opts := env.options()
	opts.ConfigPath = "/jim.toml"

	app := newTestApp(t, opts)
	if !app.Editor().StatusIsError() {
		t.Errorf("expected script error on the status line, got %q", app.Editor().Status())
	}
}

func TestApplication_Shutdown(t *testing.T) {
	app := newTestApp(t, newTestEnv().options())
	b := newFakeBackend("")
	if err := app.SetBackend(b); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	deadline := time.Now().Add(2 * time.Second)
	for !app.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	app.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestApplication_RunTwice(t *testing.T) {
	app := newTestApp(t, newTestEnv().options())
	app.running.Store(true)
	defer app.running.Store(false)

	if err := app.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
	if err := app.SetBackend(newFakeBackend("")); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning from SetBackend, got %v", err)
	}
}

func TestApplication_CloseIdempotent(t *testing.T) {
	app, err := New(newTestEnv().options())
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
