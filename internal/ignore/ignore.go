// Package ignore matches relative paths against a reduced gitignore
// subset: literal paths, trailing-slash directory rules, and shell-style
// glob wildcards. No negation, no anchoring, no re-inclusion.
package ignore

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Matcher holds compiled ignore rules in file order. First matching rule
// wins. The zero value matches nothing.
type Matcher struct {
	rules []rule
}

type rule struct {
	pattern string
	re      *regexp.Regexp
}

// Load reads ignore rules from the file at path. A missing or unreadable
// file, or an empty path, degrades to a matcher with no rules rather
// than an error.
func Load(path string) *Matcher {
	m := &Matcher{}
	if path == "" {
		return m
	}
	f, err := os.Open(path)
	if err != nil {
		return m
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m.Add(sc.Text())
	}
	return m
}

// Add appends one rule line. Blank lines, comment lines, and patterns
// that fail to compile are dropped silently.
func (m *Matcher) Add(line string) {
	p := strings.TrimSpace(line)
	if p == "" || strings.HasPrefix(p, "#") {
		return
	}
	// "dir/" means the directory's contents: rewrite to "dir/*" so it
	// matches anything nested under that exact name but not siblings
	// like "dir-tools".
	if strings.HasSuffix(p, "/") {
		p = p + "*"
	}
	re, err := compile(p)
	if err != nil {
		return
	}
	m.rules = append(m.rules, rule{pattern: p, re: re})
}

// AddAll appends a list of rule lines in order.
func (m *Matcher) AddAll(lines []string) {
	for _, l := range lines {
		m.Add(l)
	}
}

// Match reports whether rel matches any rule. Rules are tried in load
// order against the whole slash-separated path, not per segment.
func (m *Matcher) Match(rel string) bool {
	if m == nil {
		return false
	}
	for _, r := range m.rules {
		if r.re.MatchString(rel) {
			return true
		}
	}
	return false
}

// Rules returns the normalized patterns in match order.
func (m *Matcher) Rules() []string {
	out := make([]string, len(m.rules))
	for i, r := range m.rules {
		out[i] = r.pattern
	}
	return out
}

// compile translates a glob into an anchored regexp. `*` matches any run
// of characters including separators, `?` a single character, `[...]` a
// character class with optional leading `!` or `^` negation.
func compile(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				// unterminated class: treat the bracket literally
				b.WriteString(regexp.QuoteMeta(string(c)))
				continue
			}
			class := pattern[i+1 : j]
			b.WriteString("[")
			if strings.HasPrefix(class, "!") {
				b.WriteString("^")
				class = class[1:]
			}
			b.WriteString(class)
			b.WriteString("]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
