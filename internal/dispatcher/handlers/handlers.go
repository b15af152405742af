// Package handlers collects the built-in action handlers.
package handlers

import (
	"github.com/dshills/jim/internal/dispatcher/handler"
	"github.com/dshills/jim/internal/dispatcher/handlers/buffer"
	"github.com/dshills/jim/internal/dispatcher/handlers/cursor"
	"github.com/dshills/jim/internal/dispatcher/handlers/editor"
	"github.com/dshills/jim/internal/dispatcher/handlers/mode"
)

// NamespaceRegistrar accepts namespace handlers.
type NamespaceRegistrar interface {
	RegisterNamespace(h handler.NamespaceHandler)
}

// Defaults returns a fresh set of the built-in namespace handlers.
func Defaults() []handler.NamespaceHandler {
	return []handler.NamespaceHandler{
		cursor.NewHandler(),
		mode.NewHandler(),
		editor.NewHandler(),
		buffer.NewHandler(),
	}
}

// RegisterDefaults registers every built-in handler with r.
func RegisterDefaults(r NamespaceRegistrar) {
	for _, h := range Defaults() {
		r.RegisterNamespace(h)
	}
}
