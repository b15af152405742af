package dispatcher

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/input/key"
	"github.com/dshills/jim/internal/input/keymap"
	"github.com/dshills/jim/internal/input/mode"
)

// Logger receives debug traces of dispatch decisions.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Dispatcher routes key events to editor operations.
type Dispatcher struct {
	// Core components
	registry *Registry
	router   *Router
	keymap   *keymap.Keymap

	// Dispatch state
	editor *editor.Editor
	ctx    *execctx.Context

	config  Config
	logger  Logger
	metrics *Metrics
}

// New creates a dispatcher driving ed with the mappings and commands in km.
func New(ed *editor.Editor, km *keymap.Keymap, config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		router:   NewRouter(),
		keymap:   km,
		editor:   ed,
		ctx:      execctx.New(ed, config.HistorySize),
		config:   config,
		logger:   nopLogger{},
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	ed.Mode().OnChange(func(from, to mode.Mode) {
		d.logger.Debug("mode %s -> %s", from, to)
	})

	return d
}

// SetLogger sets the logger used for dispatch traces.
func (d *Dispatcher) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	d.logger = l
}

// Registry returns the exact-name handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Router returns the namespace router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Keymap returns the mapping and command tables.
func (d *Dispatcher) Keymap() *keymap.Keymap {
	return d.keymap
}

// Context returns the dispatch context.
func (d *Dispatcher) Context() *execctx.Context {
	return d.ctx
}

// Editor returns the editor being driven.
func (d *Dispatcher) Editor() *editor.Editor {
	return d.editor
}

// Metrics returns the metrics collector, or nil if metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// RegisterHandler binds h to an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterNamespace registers a handler for a whole action namespace.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.router.RegisterNamespace(h)
}

// CanHandle returns true if an action name resolves to a handler.
func (d *Dispatcher) CanHandle(actionName string) bool {
	return d.lookup(actionName) != nil
}

// Unresolved returns the action names used by mappings or commands that
// no handler can run, in keymap order without duplicates.
func (d *Dispatcher) Unresolved() []string {
	var names []string
	seen := make(map[string]bool)
	check := func(action string) {
		if seen[action] {
			return
		}
		seen[action] = true
		if !d.CanHandle(action) {
			names = append(names, action)
		}
	}

	for _, m := range d.keymap.Mappings() {
		check(m.Action)
	}
	for _, c := range d.keymap.Commands() {
		check(c.Action)
	}
	return names
}

// Dispatch handles one key event according to the current mode.
// Errors come from the actions that ran; the dispatcher itself is left
// in a consistent state either way.
func (d *Dispatcher) Dispatch(ev key.Event) error {
	if d.metrics != nil {
		d.metrics.RecordKey()
	}

	switch d.editor.Mode().Current() {
	case mode.Insert:
		return d.dispatchInsert(ev)
	case mode.Command:
		return d.dispatchCommand(ev)
	default:
		return d.dispatchNormal(ev)
	}
}

// dispatchNormal matches the key history against the keymap.
func (d *Dispatcher) dispatchNormal(ev key.Event) error {
	ctx := d.ctx
	ctx.Push(ev)

	// The key after a pending mapping is its argument, never a trigger.
	if ctx.Locked() {
		m := ctx.Armed()
		ctx.Disarm()
		return d.fire(m)
	}

	m, ok := d.keymap.Match(ctx.History(), d.config.Strategy)
	if !ok {
		// Under tail matching, keys that no longer lead into any mapping
		// can never take part in a match.
		if d.config.Strategy == keymap.MatchTail && !d.keymap.HasPrefix(ctx.History()) {
			ctx.ClearHistory()
		}
		return nil
	}

	if m.Pending {
		ctx.Arm(m)
		d.logger.Debug("armed %q -> %s", m.Keys, m.Action)
		return nil
	}
	return d.fire(m)
}

// fire runs the mapping's action and clears the history.
func (d *Dispatcher) fire(m *keymap.Mapping) error {
	d.logger.Debug("fired %q -> %s (history %s)", m.Keys, m.Action, d.ctx.History())
	err := d.Execute(m.Action)
	d.ctx.ClearHistory()
	return err
}

// dispatchInsert edits text directly.
func (d *Dispatcher) dispatchInsert(ev key.Event) error {
	buf, cur := d.ctx.Buffer(), d.ctx.Cursor()

	switch {
	case ev == key.Escape:
		d.editor.Mode().Switch(mode.Normal)
		cur.MoveLeft(buf, 1)
		return nil
	case ev == key.Enter:
		return cur.WriteChar(buf, '\n')
	case ev == key.Tab:
		return cur.WriteChar(buf, '\t')
	case ev == key.Backspace:
		return cur.Backspace(buf)
	case ev.IsChar():
		return cur.WriteChar(buf, ev.Rune)
	}
	return nil
}

// dispatchCommand edits and runs the command line.
func (d *Dispatcher) dispatchCommand(ev key.Event) error {
	state := d.editor.Mode()

	switch {
	case ev == key.Escape:
		state.Switch(mode.Normal)
		return nil
	case ev == key.Backspace:
		state.BackspaceCommand()
		return nil
	case ev == key.Enter:
		return d.runCommandLine()
	case ev.IsChar():
		state.AppendCommand(ev.Rune)
	}
	return nil
}

// runCommandLine runs the command bound to the typed line, then clears
// the line and returns to Normal mode.
func (d *Dispatcher) runCommandLine() error {
	state := d.editor.Mode()
	line := state.CommandLine()

	var err error
	if cmd, ok := d.keymap.LookupCommand(line); ok {
		d.logger.Debug("command %q -> %s", line, cmd.Action)
		err = d.Execute(cmd.Action)
	} else {
		d.logger.Debug("unbound command %q", line)
	}

	state.ClearCommand()
	state.Switch(mode.Normal)
	return err
}

// Execute runs the named action against the current context.
func (d *Dispatcher) Execute(actionName string) error {
	if actionName == "" {
		return ErrInvalidAction
	}
	if err := d.ctx.Validate(); err != nil {
		return err
	}

	h := d.lookup(actionName)
	if h == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, actionName)
	}

	start := time.Now()
	d.ctx.SetAction(actionName)

	var err error
	if d.config.RecoverFromPanic {
		err = d.executeWithRecovery(h, actionName)
	} else {
		err = h.Handle(d.ctx)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(actionName, time.Since(start), err)
	}
	return err
}

// lookup resolves an action name, preferring exact registrations.
func (d *Dispatcher) lookup(actionName string) handler.Handler {
	if h := d.registry.Get(actionName); h != nil {
		return h
	}
	return d.router.Route(actionName)
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, actionName string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			err = fmt.Errorf("%w: %s: %v\n%s", ErrPanic, actionName, r, stack[:n])

			if d.metrics != nil {
				d.metrics.RecordPanic(actionName)
			}
		}
	}()

	return h.Handle(d.ctx)
}
