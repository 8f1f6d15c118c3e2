// Package tracker reconstructs relative paths from per-line depths.
package tracker

import (
	"fmt"
	"strings"
)

// Tracker holds the names of the ancestors seen so far, indexed by depth.
// Index 0 is the diagram's root label and never appears in a relative
// path. One Tracker serves one diagram; lines must be tracked in their
// original order because each depth is only meaningful relative to the
// previous line.
type Tracker struct {
	stack []string
}

// New returns an empty Tracker for a single diagram session.
func New() *Tracker {
	return &Tracker{}
}

// Track records the item at the given depth and returns its relative
// path. Entries deeper than depth belong to a closed subtree and are
// discarded. A depth more than one level past the current nesting has
// no parent to attach to and is rejected as a malformed diagram.
// Depth 0 (the root label) yields an empty path.
func (t *Tracker) Track(depth int, name string) (string, error) {
	if depth > len(t.stack) {
		return "", fmt.Errorf("depth %d at %q jumps past current nesting %d", depth, name, len(t.stack))
	}
	t.stack = append(t.stack[:depth], name)

	if depth == 0 {
		return "", nil
	}
	return strings.Join(t.stack[1:depth+1], "/"), nil
}
