package config

import (
	"fmt"

	"github.com/dshills/jim/internal/input/keymap"
)

// Keymap builds the mapping and command tables: configured entries first,
// then the built-in defaults.
func (c *Config) Keymap() (*keymap.Keymap, error) {
	km := keymap.New()

	for i, m := range c.Nmap {
		b := keymap.NewBinding(m.Keys, m.Action).WithDescription(m.Description)
		if m.Pending {
			b = b.AsPending()
		}
		if err := km.Add(b); err != nil {
			return nil, fmt.Errorf("nmap[%d]: %w", i, err)
		}
	}
	if err := km.AddAll(keymap.DefaultNormalBindings()); err != nil {
		return nil, err
	}

	for i, cmd := range c.Commands {
		if err := km.AddCommand(keymap.NewCommand(cmd.Name, cmd.Action).WithDescription(cmd.Description)); err != nil {
			return nil, fmt.Errorf("command[%d]: %w", i, err)
		}
	}
	if err := km.AddCommands(keymap.DefaultCommands()); err != nil {
		return nil, err
	}

	return km, nil
}
