package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/jim/internal/input/key"
)

// Errors returned when building a keymap.
var (
	ErrEmptyKeys    = errors.New("binding has no keys")
	ErrEmptyAction  = errors.New("binding has no action")
	ErrEmptyCommand = errors.New("command has no name")
)

// ParseError describes a binding whose key sequence could not be parsed.
type ParseError struct {
	Keys string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing keys %q: %v", e.Keys, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Keymap holds Normal mode mappings and Command mode commands in
// registration order.
type Keymap struct {
	mappings []*Mapping
	commands []Command

	// trie indexes mappings for MatchTail. Rebuilt lazily after Add.
	trie *trieNode
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{}
}

// Add parses and registers a binding after all existing ones.
func (k *Keymap) Add(b Binding) error {
	if b.Keys == "" {
		return ErrEmptyKeys
	}
	if b.Action == "" {
		return fmt.Errorf("%w: keys %q", ErrEmptyAction, b.Keys)
	}

	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return &ParseError{Keys: b.Keys, Err: err}
	}

	k.mappings = append(k.mappings, &Mapping{
		Binding:  b,
		Sequence: seq,
		order:    len(k.mappings),
	})
	k.trie = nil
	return nil
}

// AddAll registers bindings in order, stopping at the first error.
func (k *Keymap) AddAll(bindings []Binding) error {
	for _, b := range bindings {
		if err := k.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// Mappings returns the registered mappings in registration order.
func (k *Keymap) Mappings() []*Mapping {
	return k.mappings
}

// Len returns the number of mappings.
func (k *Keymap) Len() int {
	return len(k.mappings)
}

// AddCommand registers a command after all existing ones.
func (k *Keymap) AddCommand(c Command) error {
	if c.Name == "" {
		return ErrEmptyCommand
	}
	if c.Action == "" {
		return fmt.Errorf("%w: command %q", ErrEmptyAction, c.Name)
	}
	k.commands = append(k.commands, c)
	return nil
}

// AddCommands registers commands in order, stopping at the first error.
func (k *Keymap) AddCommands(commands []Command) error {
	for _, c := range commands {
		if err := k.AddCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// Commands returns the registered commands in registration order.
func (k *Keymap) Commands() []Command {
	return k.commands
}

// LookupCommand returns the first command whose name equals line exactly.
func (k *Keymap) LookupCommand(line string) (Command, bool) {
	for _, c := range k.commands {
		if c.Name == line {
			return c, true
		}
	}
	return Command{}, false
}
