package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/jim/internal/input/key"
)

// Strategy selects how mapping sequences are matched against the history.
type Strategy uint8

const (
	// MatchWindow matches a sequence found anywhere in the history.
	MatchWindow Strategy = iota
	// MatchTail matches a sequence only at the end of the history.
	MatchTail
)

// String returns the strategy's configuration name.
func (s Strategy) String() string {
	switch s {
	case MatchWindow:
		return "window"
	case MatchTail:
		return "tail"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy parses a configuration name ("window" or "tail").
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "window":
		return MatchWindow, nil
	case "tail":
		return MatchTail, nil
	default:
		return MatchWindow, fmt.Errorf("unknown match strategy %q", name)
	}
}

// Match returns the earliest-registered mapping that matches history
// under the given strategy.
func (k *Keymap) Match(history key.Sequence, s Strategy) (*Mapping, bool) {
	if s == MatchTail {
		return k.matchTail(history)
	}
	return k.matchWindow(history)
}

func (k *Keymap) matchWindow(history key.Sequence) (*Mapping, bool) {
	for _, m := range k.mappings {
		if history.ContainsWindow(m.Sequence) {
			return m, true
		}
	}
	return nil, false
}

func (k *Keymap) matchTail(history key.Sequence) (*Mapping, bool) {
	if k.trie == nil {
		k.trie = buildTrie(k.mappings)
	}

	var best *Mapping
	// Try every suffix of the history; a suffix matches if walking it
	// through the trie ends on a node that terminates a sequence.
	for start := len(history) - 1; start >= 0; start-- {
		node := k.trie.walk(history[start:])
		if node == nil {
			continue
		}
		if m := node.first; m != nil && (best == nil || m.order < best.order) {
			best = m
		}
	}
	return best, best != nil
}

// HasPrefix reports whether some mapping could still match if more keys
// arrive after history, that is, whether a suffix of history is a proper
// prefix of a mapping sequence.
func (k *Keymap) HasPrefix(history key.Sequence) bool {
	if k.trie == nil {
		k.trie = buildTrie(k.mappings)
	}
	for start := len(history) - 1; start >= 0; start-- {
		if node := k.trie.walk(history[start:]); node != nil && len(node.children) > 0 {
			return true
		}
	}
	return false
}

// trieNode is one step of a key sequence.
type trieNode struct {
	children map[key.Event]*trieNode

	// first is the earliest-registered mapping ending at this node.
	first *Mapping
}

func buildTrie(mappings []*Mapping) *trieNode {
	root := &trieNode{}
	for _, m := range mappings {
		if m.Sequence.IsEmpty() {
			continue
		}
		node := root
		for _, e := range m.Sequence {
			if node.children == nil {
				node.children = make(map[key.Event]*trieNode)
			}
			next, ok := node.children[e]
			if !ok {
				next = &trieNode{}
				node.children[e] = next
			}
			node = next
		}
		if node.first == nil {
			node.first = m
		}
	}
	return root
}

// walk follows seq from n and returns the node reached, or nil if seq
// leaves the trie.
func (n *trieNode) walk(seq key.Sequence) *trieNode {
	node := n
	for _, e := range seq {
		next, ok := node.children[e]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}
