package lua

import (
	"fmt"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/input/keymap"
	"github.com/dshills/jim/internal/input/mode"
)

// actionPrefix namespaces the actions scripts define.
const actionPrefix = "lua."

// HandlerRegistrar accepts handlers for exact action names.
type HandlerRegistrar interface {
	RegisterHandler(actionName string, h handler.Handler)
}

// Logger receives output from scripts.
type Logger interface {
	Info(msg string, args ...any)
}

// Runtime binds a Lua state to the editor's keymap and dispatcher.
type Runtime struct {
	state    *State
	handlers HandlerRegistrar
	keymap   *keymap.Keymap
	logger   Logger

	// ctx is the dispatch context of the running command or mapping.
	ctx      *execctx.Context
	mappings int
}

// NewRuntime creates a runtime whose scripts register commands and
// mappings in km and their handlers with handlers.
func NewRuntime(handlers HandlerRegistrar, km *keymap.Keymap, logger Logger, opts ...StateOption) *Runtime {
	r := &Runtime{
		state:    NewState(opts...),
		handlers: handlers,
		keymap:   km,
		logger:   logger,
	}
	r.state.RegisterModule("jim", r.module())
	r.state.SetGlobal("print", r.state.L.NewFunction(r.print))
	return r
}

// LoadFile runs a script file.
func (r *Runtime) LoadFile(path string) error {
	if err := r.state.DoFile(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadString runs a script from a string.
func (r *Runtime) LoadString(code string) error {
	return r.state.DoString(code)
}

// Close releases the Lua state.
func (r *Runtime) Close() error {
	return r.state.Close()
}

func (r *Runtime) module() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		// Registration
		"command": r.command,
		"nmap":    r.nmap,

		// Motion
		"move_left":  r.move(func(ctx *execctx.Context, n int) { ctx.Cursor().MoveLeft(ctx.Buffer(), n) }),
		"move_right": r.move(func(ctx *execctx.Context, n int) { ctx.Cursor().MoveRight(ctx.Buffer(), n) }),
		"move_up":    r.move(func(ctx *execctx.Context, n int) { ctx.Cursor().MoveUp(ctx.Buffer(), n) }),
		"move_down":  r.move(func(ctx *execctx.Context, n int) { ctx.Cursor().MoveDown(ctx.Buffer(), n) }),

		// Editing
		"write":     r.write,
		"backspace": r.backspace,
		"delete":    r.delete,

		// State
		"line":     r.line,
		"text":     r.text,
		"position": r.position,
		"mode":     r.mode,
		"set_mode": r.setMode,
		"arg":      r.arg,

		// Session
		"save":   r.save,
		"status": r.status,
		"quit":   r.quit,
	}
}

// invoke wraps fn as a handler that exposes the dispatch context to the
// editor functions while it runs.
func (r *Runtime) invoke(fn *lua.LFunction) handler.Handler {
	return handler.HandlerFunc(func(ctx *execctx.Context) error {
		r.ctx = ctx
		defer func() { r.ctx = nil }()
		return r.state.CallFunction(fn)
	})
}

// context returns the active dispatch context or raises a Lua error.
func (r *Runtime) context(L *lua.LState) *execctx.Context {
	if r.ctx == nil {
		L.RaiseError("%s", ErrNoContext)
	}
	return r.ctx
}

// Registration

// command implements jim.command(name, fn).
func (r *Runtime) command(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	action := actionPrefix + "command." + name
	if err := r.keymap.AddCommand(keymap.NewCommand(name, action).WithDescription("lua")); err != nil {
		L.RaiseError("jim.command: %s", err)
	}
	r.handlers.RegisterHandler(action, r.invoke(fn))
	return 0
}

// nmap implements jim.nmap(keys, fn|action, pending).
func (r *Runtime) nmap(L *lua.LState) int {
	keys := L.CheckString(1)
	pending := L.OptBool(3, false)

	var action string
	switch target := L.Get(2).(type) {
	case *lua.LFunction:
		r.mappings++
		action = actionPrefix + "nmap." + strconv.Itoa(r.mappings)
		r.handlers.RegisterHandler(action, r.invoke(target))
	case lua.LString:
		action = string(target)
	default:
		L.ArgError(2, "function or action name expected")
		return 0
	}

	b := keymap.NewBinding(keys, action).WithDescription("lua")
	if pending {
		b = b.AsPending()
	}
	if err := r.keymap.Add(b); err != nil {
		L.RaiseError("jim.nmap: %s", err)
	}
	return 0
}

// Editor functions

func (r *Runtime) move(fn func(ctx *execctx.Context, n int)) lua.LGFunction {
	return func(L *lua.LState) int {
		ctx := r.context(L)
		fn(ctx, L.OptInt(1, 1))
		return 0
	}
}

func (r *Runtime) write(L *lua.LState) int {
	ctx := r.context(L)
	if err := ctx.Cursor().WriteString(ctx.Buffer(), L.CheckString(1)); err != nil {
		L.RaiseError("jim.write: %s", err)
	}
	return 0
}

func (r *Runtime) backspace(L *lua.LState) int {
	ctx := r.context(L)
	if err := ctx.Cursor().Backspace(ctx.Buffer()); err != nil {
		L.RaiseError("jim.backspace: %s", err)
	}
	return 0
}

func (r *Runtime) delete(L *lua.LState) int {
	ctx := r.context(L)
	if err := ctx.Cursor().Delete(ctx.Buffer()); err != nil {
		L.RaiseError("jim.delete: %s", err)
	}
	return 0
}

func (r *Runtime) line(L *lua.LState) int {
	ctx := r.context(L)
	text, _ := ctx.Buffer().Line(ctx.Cursor().Line())
	L.Push(lua.LString(text))
	return 1
}

func (r *Runtime) text(L *lua.LState) int {
	ctx := r.context(L)
	L.Push(lua.LString(ctx.Buffer().Text()))
	return 1
}

func (r *Runtime) position(L *lua.LState) int {
	ctx := r.context(L)
	p := ctx.Cursor().Position(ctx.Buffer())
	L.Push(lua.LNumber(p.Column))
	L.Push(lua.LNumber(p.Line))
	return 2
}

func (r *Runtime) mode(L *lua.LState) int {
	ctx := r.context(L)
	L.Push(lua.LString(ctx.Mode().Current().String()))
	return 1
}

func (r *Runtime) setMode(L *lua.LState) int {
	ctx := r.context(L)
	m, ok := mode.Parse(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown mode")
		return 0
	}
	ctx.Mode().Switch(m)
	return 0
}

func (r *Runtime) arg(L *lua.LState) int {
	ctx := r.context(L)
	if ch, ok := ctx.ArgRune(); ok {
		L.Push(lua.LString(string(ch)))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

func (r *Runtime) save(L *lua.LState) int {
	ctx := r.context(L)
	if err := ctx.Editor.Save(); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

func (r *Runtime) status(L *lua.LState) int {
	ctx := r.context(L)
	ctx.Editor.SetStatus(L.CheckString(1))
	return 0
}

func (r *Runtime) quit(L *lua.LState) int {
	r.context(L).Editor.Quit()
	return 0
}

// print sends script output to the logger.
func (r *Runtime) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	if r.logger != nil {
		r.logger.Info("lua: %s", strings.Join(parts, "\t"))
	}
	return 0
}
