package keymap

import (
	"github.com/dshills/jim/internal/input/key"
)

// Binding represents a single key-to-action mapping declaration.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Formats: "j", "gg", "<Esc>", "<lCr>w", "<C-s>"
	Keys string

	// Action is the name of the action to run.
	// Examples: "cursor.moveDown", "editor.save", "mode.insert"
	Action string

	// Pending makes the binding wait for one argument key before firing.
	Pending bool

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// AsPending marks the binding as pending.
func (b Binding) AsPending() Binding {
	b.Pending = true
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Mapping is a binding with a parsed key sequence.
type Mapping struct {
	Binding
	Sequence key.Sequence

	// order is the registration position, used to break ties.
	order int
}

// Command binds a command-line name to an action.
type Command struct {
	// Name must equal the typed command line verbatim.
	Name string

	// Action is the name of the action to run.
	Action string

	// Description provides documentation for the command.
	Description string
}

// NewCommand creates a command binding.
func NewCommand(name, action string) Command {
	return Command{Name: name, Action: action}
}

// WithDescription sets the description for this command.
func (c Command) WithDescription(desc string) Command {
	c.Description = desc
	return c
}
