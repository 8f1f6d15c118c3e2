// Package glyph strips tree-drawing glyphs from diagram lines.
package glyph

import "strings"

// catalog lists every recognized tree glyph. Order is the matching
// priority, not cosmetics: entries are tried in sequence and the first
// match wins, so an earlier entry shadows any later entry sharing its
// prefix. Reordering changes depth counts for existing diagrams.
var catalog = []string{
	// light box-drawing branches and corners
	"├──", "└──", "├─", "└─", "├", "└",
	// heavy box-drawing branches and corners
	"┣━", "┗━", "┣", "┗",
	// vertical continuation lines
	"│", "┃",
	// ASCII fallbacks
	"|--", "`--", "+--", "|",
	// blank continuation columns: the four-space column tree emits
	// under a last child, and the no-break forms some renderers use
	"    ", "\u00a0", "\u3000",
}

// Strip removes leading tree glyphs from a raw diagram line and returns
// how many were removed together with the remaining item name. Depth is
// the glyph count. A blank or whitespace-only line has no defined depth;
// callers must filter such lines out before calling Strip.
func Strip(line string) (depth int, name string) {
	rest := strings.TrimRight(line, "\r\n")
	rest = trimIndent(rest)

	for {
		matched := false
		for _, g := range catalog {
			if strings.HasPrefix(rest, g) {
				rest = rest[len(g):]
				// Padding belongs to the connector's column; blank
				// columns carry no padding of their own.
				if !isBlank(g) {
					rest = trimPad(rest)
				}
				depth++
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	return depth, strings.TrimSpace(rest)
}

// isBlank reports whether a catalog entry is a blank continuation
// column rather than a drawn connector.
func isBlank(g string) bool {
	return strings.TrimSpace(g) == ""
}

// trimPad consumes the padding that follows a drawn connector: at most
// three spaces or tabs, the remainder of one four-wide column. Anything
// longer belongs to a blank continuation column, which the catalog
// matches as a glyph in its own right.
func trimPad(s string) string {
	n := 0
	for n < len(s) && n < 3 && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return s[n:]
}

// trimIndent consumes leading whitespace shorter than one column, the
// indentation styles that pad a line before its first connector. A run
// of a full column or more is left for the blank-column catalog entry.
func trimIndent(s string) string {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	if n > 0 && n < 4 {
		return s[n:]
	}
	return s
}
