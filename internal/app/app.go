// Package app wires the editor together: configuration, logging, the
// editing session, the key dispatcher, Lua scripts and the terminal.
package app

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/jim/internal/config"
	"github.com/dshills/jim/internal/dispatcher"
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/engine/store"
	"github.com/dshills/jim/internal/input/keymap"
	"github.com/dshills/jim/internal/plugin/lua"
	"github.com/dshills/jim/internal/renderer"
	"github.com/dshills/jim/internal/renderer/backend"
)

// Application is the central coordinator for all components.
// It manages component lifecycles, wiring, and the main event loop.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	config    *config.Config
	logger    *Logger
	logCloser io.Closer

	// Editor components
	editor     *editor.Editor
	keymap     *keymap.Keymap
	dispatcher *dispatcher.Dispatcher
	lua        *lua.Runtime

	// Display
	backend  backend.Backend
	renderer *renderer.Renderer

	// State
	running  atomic.Bool
	stopping atomic.Bool
	closed   bool

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. When empty the
	// default path is tried and a missing file means defaults; an
	// explicit path must exist.
	ConfigPath string

	// Files are files to open on startup. The first is shown first.
	Files []string

	// LogLevel and LogFile override the configuration when set.
	LogLevel string
	LogFile  string

	// Store overrides the file store.
	Store *store.Store

	// ConfigLoader overrides the configuration loader.
	ConfigLoader *config.Loader

	// Logger overrides the logger built from the configuration.
	Logger *Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the editor quits or Shutdown is called.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.mu.Lock()
	app.renderer = renderer.New(b, renderer.DefaultOptions())
	app.mu.Unlock()

	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Shutdown asks a running event loop to stop. It is safe to call from
// another goroutine, for example a signal handler.
func (app *Application) Shutdown() {
	app.stopping.Store(true)

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil && app.running.Load() {
		b.Interrupt()
	}
}

// Close releases the Lua state and the log file. It is idempotent.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return nil
	}
	app.closed = true

	app.logMetrics()

	var errs ErrorList
	if app.lua != nil {
		errs.Add(app.lua.Close())
	}
	if app.logCloser != nil {
		errs.Add(app.logCloser.Close())
	}
	return errs.AsError()
}

// logMetrics writes the most used actions at debug level.
func (app *Application) logMetrics() {
	if app.dispatcher == nil || app.dispatcher.Metrics() == nil {
		return
	}

	m := app.dispatcher.Metrics()
	sum := m.Summary()
	log := app.Logger().WithComponent("metrics")
	log.Debug("%d keys, %d actions (%v), %d errors, %d panics", sum.Keys, sum.Dispatches, sum.Busy, sum.Errors, sum.Panics)
	for _, am := range m.TopActions(5) {
		log.Debug("%s: %d runs, %d errors, max %v", am.Name, am.Runs, am.Errors, am.Max)
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Editor returns the editing session.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Keymap returns the active keymap.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer. It is nil until Run starts.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}
