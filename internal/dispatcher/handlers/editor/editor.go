package editor

import (
	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/input/keymap"
)

// Action names for editor operations.
const (
	ActionDeleteChar = keymap.ActionDeleteChar
	ActionSave       = keymap.ActionSave
	ActionQuit       = keymap.ActionQuit
	ActionSaveQuit   = keymap.ActionSaveQuit
	ActionReload     = keymap.ActionReload
)

// Handler handles editing and file operations.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new editor handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("editor")}

	h.Register(ActionDeleteChar, deleteChar)
	h.Register(ActionSave, save)
	h.Register(ActionQuit, quit)
	h.Register(ActionSaveQuit, saveQuit)
	h.Register(ActionReload, reload)

	return h
}

func deleteChar(ctx *execctx.Context) error {
	return ctx.Cursor().Delete(ctx.Buffer())
}

func save(ctx *execctx.Context) error {
	return ctx.Editor.Save()
}

func quit(ctx *execctx.Context) error {
	ctx.Editor.Quit()
	return nil
}

func saveQuit(ctx *execctx.Context) error {
	if err := ctx.Editor.Save(); err != nil {
		return err
	}
	ctx.Editor.Quit()
	return nil
}

func reload(ctx *execctx.Context) error {
	return ctx.Editor.Reload()
}
