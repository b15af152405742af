package cursor

import (
	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/input/keymap"
)

// Action names for cursor movements.
const (
	ActionMoveLeft      = keymap.ActionMoveLeft
	ActionMoveRight     = keymap.ActionMoveRight
	ActionMoveUp        = keymap.ActionMoveUp
	ActionMoveDown      = keymap.ActionMoveDown
	ActionMoveLineStart = keymap.ActionLineStart
	ActionMoveLineEnd   = keymap.ActionLineEnd
	ActionMoveFirstLine = keymap.ActionFirstLine
	ActionMoveLastLine  = keymap.ActionLastLine
	ActionFindForward   = keymap.ActionFindForward
	ActionTillForward   = keymap.ActionTillForward
)

// Handler implements namespace-based cursor movement handling.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new cursor handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("cursor")}

	h.Register(ActionMoveLeft, moveLeft)
	h.Register(ActionMoveRight, moveRight)
	h.Register(ActionMoveUp, moveUp)
	h.Register(ActionMoveDown, moveDown)
	h.Register(ActionMoveLineStart, moveLineStart)
	h.Register(ActionMoveLineEnd, moveLineEnd)
	h.Register(ActionMoveFirstLine, moveFirstLine)
	h.Register(ActionMoveLastLine, moveLastLine)
	h.Register(ActionFindForward, findForward)
	h.Register(ActionTillForward, tillForward)

	return h
}

func moveLeft(ctx *execctx.Context) error {
	ctx.Cursor().MoveLeft(ctx.Buffer(), 1)
	return nil
}

func moveRight(ctx *execctx.Context) error {
	ctx.Cursor().MoveRight(ctx.Buffer(), 1)
	return nil
}

func moveUp(ctx *execctx.Context) error {
	ctx.Cursor().MoveUp(ctx.Buffer(), 1)
	return nil
}

func moveDown(ctx *execctx.Context) error {
	ctx.Cursor().MoveDown(ctx.Buffer(), 1)
	return nil
}

func moveLineStart(ctx *execctx.Context) error {
	ctx.Cursor().MoveFullLeft()
	return nil
}

// moveLineEnd lands on the last character, not the append position.
func moveLineEnd(ctx *execctx.Context) error {
	buf, cur := ctx.Buffer(), ctx.Cursor()
	cur.MoveFullRight(buf)
	cur.MoveLeft(buf, 1)
	return nil
}

func moveFirstLine(ctx *execctx.Context) error {
	ctx.Cursor().MoveToLine(ctx.Buffer(), 0)
	return nil
}

func moveLastLine(ctx *execctx.Context) error {
	buf := ctx.Buffer()
	ctx.Cursor().MoveToLine(buf, buf.LineCount()-1)
	return nil
}
