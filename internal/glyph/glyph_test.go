package glyph

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		depth int
		item  string
	}{
		{"root label", "root", 0, "root"},
		{"root with indent", "  my-project", 0, "my-project"},
		{"light branch", "├── dir1", 1, "dir1"},
		{"light corner", "└── file.txt", 1, "file.txt"},
		{"light nested", "│   └── file.txt", 2, "file.txt"},
		{"light deep", "│   │   ├── main.go", 3, "main.go"},
		{"heavy branch", " ┣ dir1", 1, "dir1"},
		{"heavy nested", " ┃ ┣ file.txt", 2, "file.txt"},
		{"heavy corner", " ┃ ┗ last", 2, "last"},
		{"heavy composite", "┣━ src", 1, "src"},
		{"ascii branch", "|-- src", 1, "src"},
		{"ascii nested", "|   `-- main.go", 2, "main.go"},
		{"ascii plus", "+-- docs", 1, "docs"},
		{"blank column after pipe", "│       └── file4.js", 3, "file4.js"},
		{"leading blank column", "    └── nested", 2, "nested"},
		{"two leading blank columns", "        └── deep.txt", 3, "deep.txt"},
		{"blank column between pipes", "│   │       └── x.txt", 4, "x.txt"},
		{"no-break space continuation", "\u00a0└── nested.txt", 2, "nested.txt"},
		{"trailing whitespace", "├── dir1   ", 1, "dir1"},
		{"name with spaces", "├── my file.txt", 1, "my file.txt"},
		{"name with dots", "│   ├── v1.2", 2, "v1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth, item := Strip(tt.line)
			if depth != tt.depth {
				t.Errorf("Strip(%q) depth = %d, want %d", tt.line, depth, tt.depth)
			}
			if item != tt.item {
				t.Errorf("Strip(%q) item = %q, want %q", tt.line, item, tt.item)
			}
		})
	}
}

func TestStrip_GlyphStylesAreDepthEquivalent(t *testing.T) {
	light := []string{
		"root",
		"├── dir1",
		"│   ├── file.txt",
		"├── dir2",
	}
	heavy := []string{
		"root",
		" ┣ dir1",
		" ┃ ┣ file.txt",
		" ┣ dir2",
	}

	for i := range light {
		ld, _ := Strip(light[i])
		hd, _ := Strip(heavy[i])
		if ld != hd {
			t.Errorf("line %d: light depth %d != heavy depth %d", i, ld, hd)
		}
	}
}

func TestStrip_BlankColumnsAreDepthBearing(t *testing.T) {
	// Under a last child, tree draws a blank four-space column instead
	// of a pipe; both must count the same toward depth.
	lines := []struct {
		line  string
		depth int
	}{
		{"root", 0},
		{"├── dir1", 1},
		{"│   └── dir3", 2},
		{"│       └── file4.js", 3},
		{"└── dir2", 1},
		{"    └── leaf.txt", 2},
		{"        └── deepest.txt", 3},
	}

	for _, tt := range lines {
		if depth, _ := Strip(tt.line); depth != tt.depth {
			t.Errorf("Strip(%q) depth = %d, want %d", tt.line, depth, tt.depth)
		}
	}
}
