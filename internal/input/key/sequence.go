package key

import (
	"strings"
	"unicode/utf8"
)

// Sequence represents a series of key events forming a command.
// Examples: "gg", "dd", "<C-x><C-s>"
type Sequence []Event

// Len returns the number of events in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// IsEmpty returns true if the sequence has no events.
func (s Sequence) IsEmpty() bool {
	return len(s) == 0
}

// Last returns the last event and true, or false if empty.
func (s Sequence) Last() (Event, bool) {
	if len(s) == 0 {
		return Event{}, false
	}
	return s[len(s)-1], true
}

// String returns the sequence in mapping notation.
func (s Sequence) String() string {
	var sb strings.Builder
	for _, e := range s {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Equals returns true if two sequences are identical.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// ContainsWindow returns true if sub appears as a contiguous run
// anywhere in s. An empty sub never matches.
func (s Sequence) ContainsWindow(sub Sequence) bool {
	if len(sub) == 0 || len(sub) > len(s) {
		return false
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i : i+len(sub)].Equals(sub) {
			return true
		}
	}
	return false
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// ParseSequence parses a key sequence string into a Sequence.
// Characters stand for themselves; named keys and chords are enclosed in
// angle brackets. Examples: "gg", "<Esc>", "<lCr>w", "<C-x><C-s>".
func ParseSequence(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))

	for i := 0; i < len(s); {
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end > 1 {
				event, err := Parse(s[i : i+end+1])
				if err != nil {
					return nil, err
				}
				seq = append(seq, event)
				i += end + 1
				continue
			}
			// No closing >, or "<>": literal <
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		seq = append(seq, Rune(r))
		i += size
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
