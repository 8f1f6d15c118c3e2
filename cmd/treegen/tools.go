package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/treegen/internal/types"
)

type (
	// ScaffoldInput contains parameters for scaffolding a diagram.
	ScaffoldInput struct {
		Diagram   string   `json:"diagram" jsonschema:"Tree diagram text, one entry per line, first line is the root label"`
		Level     int      `json:"level,omitempty" jsonschema:"Skip entries deeper than this level (default: 0 = unlimited)"`
		Gitignore bool     `json:"gitignore,omitempty" jsonschema:"Skip entries matching the target directory's .gitignore (default: false)"`
		Ignore    []string `json:"ignore,omitempty" jsonschema:"Additional ignore patterns, same syntax as .gitignore rules"`
	}

	// ScaffoldOutput contains the per-line outcomes of a scaffold run.
	ScaffoldOutput struct {
		Reports        []types.LineReport `json:"reports"`
		Created        int                `json:"created"`
		SkippedDepth   int                `json:"skippedDepth"`
		SkippedExists  int                `json:"skippedExists"`
		SkippedIgnored int                `json:"skippedIgnored"`
	}

	// SnapshotInput contains parameters for snapshotting the target
	// directory.
	SnapshotInput struct {
		Gitignore bool     `json:"gitignore,omitempty" jsonschema:"Omit entries matching the target directory's .gitignore (default: false)"`
		Ignore    []string `json:"ignore,omitempty" jsonschema:"Additional ignore patterns, same syntax as .gitignore rules"`
	}

	// SnapshotOutput contains the directory tree.
	SnapshotOutput struct {
		Nodes []types.Node `json:"nodes"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scaffold",
		Description: "Create the files and directories described by a tree diagram under the target directory. Returns one outcome per diagram line. Existing entries are never overwritten.",
	}, handleScaffold)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Run a diagram through the interpreter without writing to disk. Reports exactly what scaffold would create or skip.",
	}, handlePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "snapshot",
		Description: "Return a JSON tree of the target directory's current contents, directories first.",
	}, handleSnapshot)
}
