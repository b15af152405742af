// Package buffer provides handlers for switching between open documents.
package buffer

import (
	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/input/keymap"
)

// Action names for buffer switching.
const (
	ActionNext     = keymap.ActionNextBuffer
	ActionPrevious = keymap.ActionPreviousBuffer
)

// Handler cycles through open documents in most-recently-used order.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new buffer handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("buffer")}

	h.Register(ActionNext, func(ctx *execctx.Context) error {
		doc := ctx.Editor.Next()
		ctx.Editor.SetStatus(doc.Name())
		return nil
	})
	h.Register(ActionPrevious, func(ctx *execctx.Context) error {
		doc := ctx.Editor.Previous()
		ctx.Editor.SetStatus(doc.Name())
		return nil
	})

	return h
}
