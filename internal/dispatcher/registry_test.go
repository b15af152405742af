package dispatcher

import (
	"testing"

	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/dispatcher/handler"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	h := handler.HandlerFunc(func(ctx *execctx.Context) error { return nil })

	r.Register("b.action", h)
	r.Register("a.action", h)

	if r.Get("a.action") == nil {
		t.Error("expected handler for a.action")
	}
	if r.Get("c.action") != nil {
		t.Error("expected nil for unregistered action")
	}

	r.Register("a.action", h)
	if r.Count() != 2 {
		t.Errorf("re-registering should replace, got %d actions", r.Count())
	}
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	ns := handler.NewBaseNamespaceHandler("cursor")
	ns.Register("cursor.moveLeft", func(ctx *execctx.Context) error { return nil })
	r.RegisterNamespace(ns)

	if r.Route("cursor.moveLeft") == nil {
		t.Error("expected route for cursor.moveLeft")
	}
	if r.Route("cursor.moveSideways") != nil {
		t.Error("expected no route for unknown cursor action")
	}
	if r.Route("moveLeft") != nil {
		t.Error("expected no route without namespace")
	}
	if ns := r.Namespaces(); len(ns) != 1 || ns[0] != "cursor" {
		t.Errorf("unexpected namespaces %v", ns)
	}
}

func TestExtractNamespace(t *testing.T) {
	tests := map[string]string{
		"cursor.moveDown": "cursor",
		"editor.save":     "editor",
		"plain":           "",
		"a.b.c":           "a",
	}
	for in, want := range tests {
		if got := extractNamespace(in); got != want {
			t.Errorf("extractNamespace(%q) = %q, want %q", in, got, want)
		}
	}
}
