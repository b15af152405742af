package mode

// Mode is the current input-interpretation state.
type Mode uint8

const (
	// Normal is the initial mode, used for navigation and commands.
	Normal Mode = iota
	// Insert is the mode for inserting text.
	Insert
	// Command is the mode for typing a command line.
	Command
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}

// Parse returns the mode with the given String name.
func Parse(name string) (Mode, bool) {
	switch name {
	case "normal":
		return Normal, true
	case "insert":
		return Insert, true
	case "command":
		return Command, true
	}
	return Normal, false
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota
	// CursorBar is a thin vertical bar cursor (insert and command modes).
	CursorBar
)

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Normal {
		return CursorBlock
	}
	return CursorBar
}

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// State holds the current mode and the Command mode line.
// The zero value is Normal mode with an empty command line.
type State struct {
	current     Mode
	commandLine []rune
	callbacks   []ChangeCallback
}

// NewState creates a state in Normal mode.
func NewState() *State {
	return &State{}
}

// Current returns the current mode.
func (s *State) Current() Mode {
	return s.current
}

// Is reports whether the current mode is m.
func (s *State) Is(m Mode) bool {
	return s.current == m
}

// Switch changes the current mode. Entering or leaving Command mode
// clears the command line. Switching to the current mode does nothing.
func (s *State) Switch(to Mode) {
	from := s.current
	if from == to {
		return
	}
	if from == Command || to == Command {
		s.commandLine = s.commandLine[:0]
	}
	s.current = to

	for _, cb := range s.callbacks {
		cb(from, to)
	}
}

// OnChange registers a callback for mode changes.
func (s *State) OnChange(cb ChangeCallback) {
	s.callbacks = append(s.callbacks, cb)
}

// CommandLine returns the text typed so far in Command mode.
func (s *State) CommandLine() string {
	return string(s.commandLine)
}

// AppendCommand adds r to the command line.
func (s *State) AppendCommand(r rune) {
	s.commandLine = append(s.commandLine, r)
}

// BackspaceCommand removes the last rune of the command line, if any.
func (s *State) BackspaceCommand() {
	if n := len(s.commandLine); n > 0 {
		s.commandLine = s.commandLine[:n-1]
	}
}

// ClearCommand empties the command line.
func (s *State) ClearCommand() {
	s.commandLine = s.commandLine[:0]
}
