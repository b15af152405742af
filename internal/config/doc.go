// Package config loads jim's settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, by default $XDG_CONFIG_HOME/jim/config.toml
//  3. Environment variables (JIM_LOG_LEVEL, JIM_LOG_FILE,
//     JIM_HISTORY_SIZE, JIM_MATCH)
//
// A configuration file looks like:
//
//	[editor]
//	history_size = 16
//	match = "window"
//	tab_width = 4
//
//	[log]
//	level = "info"
//	file = "/tmp/jim.log"
//
//	[[nmap]]
//	keys = "<C-s>"
//	action = "editor.save"
//
//	[[command]]
//	name = "W"
//	action = "editor.save"
//
//	[lua]
//	scripts = ["~/.config/jim/init.lua"]
//
// User mappings and commands are registered before the built-in ones, so
// they take precedence when both match.
package config
