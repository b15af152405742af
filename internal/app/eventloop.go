package app

import (
	"github.com/dshills/jim/internal/input/key"
	"github.com/dshills/jim/internal/renderer/backend"
)

// eventLoop draws, waits for an event, handles it, and repeats until the
// editor quits or Shutdown is called.
func (app *Application) eventLoop() error {
	app.draw()

	for {
		if app.editor.Quitting() || app.stopping.Load() {
			return ErrQuit
		}

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
		app.draw()
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		app.handleKey(ev.Key)
		return nil
	case backend.EventClosed:
		return ErrQuit
	default:
		// Resizes only need a redraw; interrupts are checked by the loop.
		return nil
	}
}

// handleKey dispatches one key. Action errors end up on the status line
// and in the log; the session continues.
func (app *Application) handleKey(k key.Event) {
	if err := app.dispatcher.Dispatch(k); err != nil {
		app.Logger().WithComponent("dispatcher").Error("key %s: %v", k, err)
		app.editor.SetError(err)
	}
}

func (app *Application) draw() {
	if app.renderer != nil {
		app.renderer.Draw(app.editor.View())
	}
}
