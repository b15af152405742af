package keymap

// Action names for the built-in actions.
const (
	ActionMoveLeft       = "cursor.moveLeft"
	ActionMoveRight      = "cursor.moveRight"
	ActionMoveUp         = "cursor.moveUp"
	ActionMoveDown       = "cursor.moveDown"
	ActionLineStart      = "cursor.moveLineStart"
	ActionLineEnd        = "cursor.moveLineEnd"
	ActionFirstLine      = "cursor.moveFirstLine"
	ActionLastLine       = "cursor.moveLastLine"
	ActionFindForward    = "cursor.findForward"
	ActionTillForward    = "cursor.tillForward"
	ActionInsert         = "mode.insert"
	ActionInsertStart    = "mode.insertLineStart"
	ActionAppend         = "mode.append"
	ActionAppendEnd      = "mode.appendLineEnd"
	ActionOpenBelow      = "mode.openLineBelow"
	ActionCommandMode    = "mode.command"
	ActionDeleteChar     = "editor.deleteChar"
	ActionSave           = "editor.save"
	ActionQuit           = "editor.quit"
	ActionSaveQuit       = "editor.saveQuit"
	ActionReload         = "editor.reload"
	ActionNextBuffer     = "buffer.next"
	ActionPreviousBuffer = "buffer.previous"
)

// DefaultNormalBindings returns the built-in Normal mode bindings in
// registration order.
func DefaultNormalBindings() []Binding {
	return []Binding{
		// Movement
		NewBinding("h", ActionMoveLeft).WithDescription("Move left"),
		NewBinding("j", ActionMoveDown).WithDescription("Move down"),
		NewBinding("k", ActionMoveUp).WithDescription("Move up"),
		NewBinding("l", ActionMoveRight).WithDescription("Move right"),
		NewBinding("0", ActionLineStart).WithDescription("Move to line start"),
		NewBinding("$", ActionLineEnd).WithDescription("Move to last character"),
		NewBinding("gg", ActionFirstLine).WithDescription("Go to first line"),
		NewBinding("G", ActionLastLine).WithDescription("Go to last line"),

		// Line search
		NewBinding("f", ActionFindForward).AsPending().WithDescription("Jump past next occurrence"),
		NewBinding("t", ActionTillForward).AsPending().WithDescription("Jump to next occurrence"),

		// Mode changes
		NewBinding("i", ActionInsert).WithDescription("Insert before cursor"),
		NewBinding("I", ActionInsertStart).WithDescription("Insert at line start"),
		NewBinding("a", ActionAppend).WithDescription("Append after cursor"),
		NewBinding("A", ActionAppendEnd).WithDescription("Append at line end"),
		NewBinding("o", ActionOpenBelow).WithDescription("Open line below"),
		NewBinding(":", ActionCommandMode).WithDescription("Enter command line"),

		// Editing
		NewBinding("x", ActionDeleteChar).WithDescription("Delete character"),

		// Buffers
		NewBinding("<C-n>", ActionNextBuffer).WithDescription("Next buffer"),
		NewBinding("<C-p>", ActionPreviousBuffer).WithDescription("Previous buffer"),
	}
}

// DefaultCommands returns the built-in Command mode commands.
func DefaultCommands() []Command {
	return []Command{
		NewCommand("w", ActionSave).WithDescription("Write buffer"),
		NewCommand("write", ActionSave),
		NewCommand("q", ActionQuit).WithDescription("Quit"),
		NewCommand("quit", ActionQuit),
		NewCommand("wq", ActionSaveQuit).WithDescription("Write and quit"),
		NewCommand("x", ActionSaveQuit),
		NewCommand("e!", ActionReload).WithDescription("Reload buffer from disk"),
		NewCommand("bn", ActionNextBuffer).WithDescription("Next buffer"),
		NewCommand("bp", ActionPreviousBuffer).WithDescription("Previous buffer"),
	}
}

// Defaults returns a keymap loaded with the built-in bindings and commands.
func Defaults() *Keymap {
	k := New()
	// The built-in tables are static and known to parse.
	if err := k.AddAll(DefaultNormalBindings()); err != nil {
		panic(err)
	}
	if err := k.AddCommands(DefaultCommands()); err != nil {
		panic(err)
	}
	return k
}
