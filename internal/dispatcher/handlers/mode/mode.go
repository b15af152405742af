package mode

import (
	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/input/keymap"
	"github.com/dshills/jim/internal/input/mode"
)

// Action names for mode operations.
const (
	ActionInsert          = keymap.ActionInsert
	ActionInsertLineStart = keymap.ActionInsertStart
	ActionAppend          = keymap.ActionAppend
	ActionAppendLineEnd   = keymap.ActionAppendEnd
	ActionOpenLineBelow   = keymap.ActionOpenBelow
	ActionCommand         = keymap.ActionCommandMode
)

// Handler handles mode switching operations.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new mode handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("mode")}

	h.Register(ActionInsert, insert)
	h.Register(ActionInsertLineStart, insertLineStart)
	h.Register(ActionAppend, appendAfter)
	h.Register(ActionAppendLineEnd, appendLineEnd)
	h.Register(ActionOpenLineBelow, openLineBelow)
	h.Register(ActionCommand, command)

	return h
}

func insert(ctx *execctx.Context) error {
	ctx.Mode().Switch(mode.Insert)
	return nil
}

func insertLineStart(ctx *execctx.Context) error {
	ctx.Cursor().MoveFullLeft()
	ctx.Mode().Switch(mode.Insert)
	return nil
}

func appendAfter(ctx *execctx.Context) error {
	ctx.Cursor().ForceMoveRight(ctx.Buffer(), 1)
	ctx.Mode().Switch(mode.Insert)
	return nil
}

func appendLineEnd(ctx *execctx.Context) error {
	ctx.Cursor().MoveFullRight(ctx.Buffer())
	ctx.Mode().Switch(mode.Insert)
	return nil
}

func openLineBelow(ctx *execctx.Context) error {
	buf, cur := ctx.Buffer(), ctx.Cursor()
	cur.MoveFullRight(buf)
	if err := cur.WriteChar(buf, '\n'); err != nil {
		return err
	}
	ctx.Mode().Switch(mode.Insert)
	return nil
}

func command(ctx *execctx.Context) error {
	ctx.Mode().Switch(mode.Command)
	return nil
}
