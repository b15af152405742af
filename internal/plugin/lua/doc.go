// Package lua runs user scripts that extend jim with commands and
// mappings.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table,
// string and math libraries are available, and file loading functions
// are removed. Every call into Lua is bounded by an execution timeout.
//
// # The jim Module
//
// Scripts see a global table named jim:
//
//	jim.command("Hello", function()
//	    jim.write("hello")
//	end)
//
//	jim.nmap("<C-d>", function()
//	    jim.move_down(5)
//	end)
//
//	-- pending: the next key is passed to the function via jim.arg()
//	jim.nmap("r", function()
//	    jim.delete()
//	    jim.write(jim.arg())
//	    jim.move_left(1)
//	end, true)
//
//	-- bind keys to a built-in action by name
//	jim.nmap("<C-s>", "editor.save")
//
// Editor functions act on the front document and may only be called
// while a command or mapping runs:
//
//	move_left(n), move_right(n), move_up(n), move_down(n)
//	write(s), backspace(), delete()
//	line() -> string          text of the cursor's line
//	text() -> string          whole buffer
//	position() -> col, line   zero-based
//	mode() -> string          "normal", "insert" or "command"
//	set_mode(name)
//	arg() -> string|nil       the argument key of a pending mapping
//	save() -> ok, err
//	status(msg)
//	quit()
package lua
