package app

import (
	"fmt"
	"strings"

	"github.com/dshills/jim/internal/config"
	"github.com/dshills/jim/internal/dispatcher"
	"github.com/dshills/jim/internal/dispatcher/handlers"
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/engine/store"
	"github.com/dshills/jim/internal/plugin/lua"
)

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      opts,
		initOrder: make([]string, 0, 5),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap() error {
	var err error

	// 1. Config
	if err = b.initConfig(); err != nil {
		b.cleanup()
		return err
	}

	// 2. Logger
	if err = b.initLogger(); err != nil {
		b.cleanup()
		return err
	}

	// 3. Editor and initial files
	if err = b.initEditor(); err != nil {
		b.cleanup()
		return err
	}

	// 4. Keymap and dispatcher
	if err = b.initDispatcher(); err != nil {
		b.cleanup()
		return err
	}

	// 5. Lua scripts
	if err = b.initLua(); err != nil {
		b.cleanup()
		return err
	}

	// 6. Every bound action must have a handler
	b.checkActions()

	b.app.Logger().Info("started with %d buffer(s)", len(b.app.editor.Documents()))
	return nil
}

// initConfig loads the configuration file and environment overrides.
func (b *bootstrapper) initConfig() error {
	loader := b.opts.ConfigLoader
	if loader == nil {
		loader = config.NewLoader()
	}

	var (
		cfg *config.Config
		err error
	)
	if b.opts.ConfigPath != "" {
		cfg, err = loader.LoadRequired(b.opts.ConfigPath)
	} else {
		cfg, err = loader.Load(config.DefaultPath())
	}
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}

	if b.opts.LogLevel != "" {
		cfg.Log.Level = b.opts.LogLevel
	}
	if b.opts.LogFile != "" {
		cfg.Log.File = b.opts.LogFile
	}

	b.app.config = cfg
	b.initOrder = append(b.initOrder, "config")
	return nil
}

// initLogger opens the log file named in the configuration.
func (b *bootstrapper) initLogger() error {
	if b.opts.Logger != nil {
		b.app.logger = b.opts.Logger
	} else {
		cfg := b.app.config.Log
		logger, closer, err := OpenLogger(ParseLogLevel(cfg.Level), cfg.File)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		b.app.logger = logger
		b.app.logCloser = closer
	}

	b.initOrder = append(b.initOrder, "logger")
	return nil
}

// initEditor creates the session and opens the files named on the
// command line. Files are opened last to first so the first ends up in
// front. A missing file becomes an empty buffer; any other load error
// is fatal.
func (b *bootstrapper) initEditor() error {
	st := b.opts.Store
	if st == nil {
		st = store.New()
	}

	ed := editor.New(
		editor.WithStore(st),
		editor.WithTabWidth(b.app.config.Editor.TabWidth),
	)

	for i := len(b.opts.Files) - 1; i >= 0; i-- {
		path := b.opts.Files[i]
		if _, err := ed.Open(path); err != nil {
			return &InitError{Component: "editor", Err: NewOperationError("open", path, err)}
		}
		b.app.Logger().WithComponent("editor").Debug("opened %s", path)
	}

	b.app.editor = ed
	b.initOrder = append(b.initOrder, "editor")
	return nil
}

// initDispatcher builds the keymap and the dispatcher with the default
// action handlers.
func (b *bootstrapper) initDispatcher() error {
	cfg := b.app.config

	km, err := cfg.Keymap()
	if err != nil {
		return &InitError{Component: "keymap", Err: err}
	}

	dcfg := dispatcher.DefaultConfig().
		WithHistorySize(cfg.Editor.HistorySize).
		WithStrategy(cfg.Strategy())
	if b.app.Logger().Level() == LogLevelDebug {
		dcfg = dcfg.WithMetrics()
	}

	d := dispatcher.New(b.app.editor, km, dcfg)
	handlers.RegisterDefaults(d)
	d.SetLogger(b.app.Logger().WithComponent("dispatcher"))

	b.app.keymap = km
	b.app.dispatcher = d
	b.initOrder = append(b.initOrder, "dispatcher")
	return nil
}

// initLua runs the configured scripts. A failing script is reported on
// the status line and in the log; the others still run.
func (b *bootstrapper) initLua() error {
	log := b.app.Logger().WithComponent("lua")
	rt := lua.NewRuntime(b.app.dispatcher, b.app.keymap, log,
		lua.WithExecutionTimeout(b.app.config.ScriptTimeout()))

	var errs ErrorList
	for _, path := range b.app.config.ScriptPaths() {
		if err := rt.LoadFile(path); err != nil {
			log.Error("%v", err)
			errs.Add(err)
			continue
		}
		log.Debug("loaded %s", path)
	}
	if err := errs.AsError(); err != nil {
		b.app.editor.SetError(err)
	}

	b.app.lua = rt
	b.initOrder = append(b.initOrder, "lua")
	return nil
}

// checkActions warns about mappings and commands whose action no handler
// runs, usually a typo in the config file. The session still starts.
func (b *bootstrapper) checkActions() {
	d := b.app.dispatcher
	log := b.app.Logger().WithComponent("dispatcher")
	log.Debug("%d exact handlers, namespaces %v", d.Registry().Count(), d.Router().Namespaces())

	missing := d.Unresolved()
	for _, name := range missing {
		log.Warn("no handler for action %q", name)
	}
	if len(missing) > 0 {
		b.app.editor.SetError(fmt.Errorf("%w: %s", dispatcher.ErrNoHandler, strings.Join(missing, ", ")))
	}
}

// cleanup releases components initialized so far, in reverse order.
func (b *bootstrapper) cleanup() {
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		switch b.initOrder[i] {
		case "lua":
			if b.app.lua != nil {
				_ = b.app.lua.Close()
			}
		case "logger":
			if b.app.logCloser != nil {
				_ = b.app.logCloser.Close()
			}
		}
	}
}
