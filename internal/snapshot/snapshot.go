// Package snapshot builds a JSON tree describing an existing directory,
// the reverse of scaffolding a diagram.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taigrr/treegen/internal/ignore"
	"github.com/taigrr/treegen/internal/types"
)

// OutputFile is the default snapshot file written into the root.
const OutputFile = "project_structure.json"

// skipNames are always omitted regardless of ignore rules.
var skipNames = map[string]bool{
	"__pycache__": true,
	".DS_Store":   true,
	".git":        true,
}

// Build walks root and returns its entries as a tree. Children are
// ordered directories first, then case-insensitive by name. Entries in
// the built-in skip set, compiled-artifact files, and paths matching the
// ignore matcher are omitted.
func Build(root string, m *ignore.Matcher) ([]types.Node, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}
	return walk(absRoot, "", m)
}

func walk(dir, rel string, m *ignore.Matcher) ([]types.Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	// directories first, then case-insensitive name order
	sort.Slice(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var nodes []types.Node
	for _, entry := range entries {
		name := entry.Name()
		if skipNames[name] {
			continue
		}

		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}
		if m.Match(entryRel) {
			continue
		}

		if entry.IsDir() {
			children, err := walk(filepath.Join(dir, name), entryRel, m)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, types.Node{
				Path:     entryRel,
				Type:     types.KindDirectory,
				Children: children,
			})
			continue
		}

		ext := filepath.Ext(name)
		if ext == ".pyc" {
			continue
		}
		nodes = append(nodes, types.Node{
			Path:      entryRel,
			Type:      types.KindFile,
			Extension: ext,
		})
	}
	return nodes, nil
}

// Write emits the tree as indented JSON.
func Write(w io.Writer, nodes []types.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(nodes)
}

// WriteFile writes the tree to OutputFile under root and returns the
// path written.
func WriteFile(root string, nodes []types.Node) (string, error) {
	out := filepath.Join(root, OutputFile)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	defer f.Close()
	if err := Write(f, nodes); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return out, nil
}
