package editor

import (
	"errors"
	"testing"

	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/engine/store"
)

func newContext(t *testing.T, path, text string) (*execctx.Context, *store.MemFS) {
	t.Helper()
	fsys := store.NewMemFS()
	ed := editor.New(editor.WithStore(store.NewWithFS(fsys)))
	ed.OpenString(path, text)
	return execctx.New(ed, 0), fsys
}

func run(ctx *execctx.Context, action string) error {
	return NewHandler().HandleAction(action, ctx)
}

func TestDeleteChar(t *testing.T) {
	ctx, _ := newContext(t, "", "abc")
	ctx.Cursor().MoveRight(ctx.Buffer(), 2)

	if err := run(ctx, ActionDeleteChar); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if ctx.Buffer().Text() != "ab" {
		t.Errorf("expected 'ab', got %q", ctx.Buffer().Text())
	}
	if ctx.Cursor().Column() != 1 {
		t.Errorf("expected cursor to step back to column 1, got %d", ctx.Cursor().Column())
	}
}

func TestSave(t *testing.T) {
	ctx, _ := newContext(t, "/f.txt", "content")

	if err := run(ctx, ActionSave); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := ctx.Editor.Store().Load("/f.txt")
	if err != nil || got != "content" {
		t.Errorf("expected saved content, got %q, %v", got, err)
	}
	if ctx.Editor.Quitting() {
		t.Error("save should not quit")
	}
}

func TestSaveQuit(t *testing.T) {
	ctx, _ := newContext(t, "/f.txt", "x")

	if err := run(ctx, ActionSaveQuit); err != nil {
		t.Fatalf("saveQuit failed: %v", err)
	}
	if !ctx.Editor.Quitting() {
		t.Error("expected editor to quit")
	}
}

func TestSaveQuitFailureKeepsRunning(t *testing.T) {
	ctx, fsys := newContext(t, "/f.txt", "x")
	fsys.FailWrites = errors.New("read-only file system")

	err := run(ctx, ActionSaveQuit)
	if !errors.Is(err, store.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if ctx.Editor.Quitting() {
		t.Error("failed save should not quit")
	}
}

func TestQuit(t *testing.T) {
	ctx, _ := newContext(t, "", "")
	if err := run(ctx, ActionQuit); err != nil {
		t.Fatalf("quit failed: %v", err)
	}
	if !ctx.Editor.Quitting() {
		t.Error("expected editor to quit")
	}
}

func TestReload(t *testing.T) {
	ctx, fsys := newContext(t, "/f.txt", "changed")
	fsys.AddFile("/f.txt", "on disk")

	if err := run(ctx, ActionReload); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if ctx.Buffer().Text() != "on disk" {
		t.Errorf("expected disk content, got %q", ctx.Buffer().Text())
	}
}
