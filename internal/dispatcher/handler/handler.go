// Package handler provides the handler interfaces actions are dispatched to.
package handler

import (
	"fmt"

	"github.com/dshills/jim/internal/dispatcher/execctx"
)

// Handler runs a single action.
type Handler interface {
	// Handle executes the action against the context.
	Handle(ctx *execctx.Context) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx *execctx.Context) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx *execctx.Context) error {
	if f == nil {
		return fmt.Errorf("handler function is nil")
	}
	return f(ctx)
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g., "cursor" in "cursor.moveDown").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(actionName string, ctx *execctx.Context) error

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g., "cursor", "editor").
	Namespace() string
}

// namespaceAdapter binds a NamespaceHandler to one action name.
type namespaceAdapter struct {
	h    NamespaceHandler
	name string
}

// NewNamespaceAdapter creates a Handler that runs actionName on h.
func NewNamespaceAdapter(h NamespaceHandler, actionName string) Handler {
	return &namespaceAdapter{h: h, name: actionName}
}

func (a *namespaceAdapter) Handle(ctx *execctx.Context) error {
	return a.h.HandleAction(a.name, ctx)
}

// BaseNamespaceHandler provides a base implementation for namespace handlers.
type BaseNamespaceHandler struct {
	namespace string
	actions   map[string]HandlerFunc
}

// NewBaseNamespaceHandler creates a new BaseNamespaceHandler.
func NewBaseNamespaceHandler(namespace string) *BaseNamespaceHandler {
	return &BaseNamespaceHandler{
		namespace: namespace,
		actions:   make(map[string]HandlerFunc),
	}
}

// Register registers a handler function for an action name.
func (h *BaseNamespaceHandler) Register(actionName string, fn HandlerFunc) {
	h.actions[actionName] = fn
}

// Namespace implements NamespaceHandler.
func (h *BaseNamespaceHandler) Namespace() string {
	return h.namespace
}

// CanHandle implements NamespaceHandler.
func (h *BaseNamespaceHandler) CanHandle(actionName string) bool {
	_, ok := h.actions[actionName]
	return ok
}

// HandleAction implements NamespaceHandler.
func (h *BaseNamespaceHandler) HandleAction(actionName string, ctx *execctx.Context) error {
	fn, ok := h.actions[actionName]
	if !ok {
		return fmt.Errorf("unknown %s action: %s", h.namespace, actionName)
	}
	return fn(ctx)
}
