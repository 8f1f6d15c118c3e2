package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/treegen/internal/ignore"
	"github.com/taigrr/treegen/internal/scaffold"
	"github.com/taigrr/treegen/internal/snapshot"
)

func handleScaffold(ctx context.Context, req *mcp.CallToolRequest, input ScaffoldInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
	return runDiagram(input, false)
}

func handlePreview(ctx context.Context, req *mcp.CallToolRequest, input ScaffoldInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
	return runDiagram(input, true)
}

func runDiagram(input ScaffoldInput, dryRun bool) (*mcp.CallToolResult, ScaffoldOutput, error) {
	if strings.TrimSpace(input.Diagram) == "" {
		return &mcp.CallToolResult{IsError: true}, ScaffoldOutput{}, fmt.Errorf("diagram cannot be empty")
	}

	svc := scaffold.New(targetDir, scaffold.Options{
		LevelLimit: input.Level,
		DryRun:     dryRun,
		Matcher:    buildMatcher(input.Gitignore, input.Ignore),
	})

	sum, err := svc.Run(strings.Split(input.Diagram, "\n"))
	out := ScaffoldOutput{
		Reports:        sum.Reports,
		Created:        sum.Created,
		SkippedDepth:   sum.SkippedDepth,
		SkippedExists:  sum.SkippedExists,
		SkippedIgnored: sum.SkippedIgnored,
	}
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, out, err
	}
	return nil, out, nil
}

func handleSnapshot(ctx context.Context, req *mcp.CallToolRequest, input SnapshotInput) (*mcp.CallToolResult, SnapshotOutput, error) {
	nodes, err := snapshot.Build(targetDir, buildMatcher(input.Gitignore, input.Ignore))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SnapshotOutput{}, err
	}
	return nil, SnapshotOutput{Nodes: nodes}, nil
}

func buildMatcher(useGitignore bool, extra []string) *ignore.Matcher {
	var gitignorePath string
	if useGitignore {
		gitignorePath = filepath.Join(targetDir, ".gitignore")
	}
	m := ignore.Load(gitignorePath)
	m.AddAll(extra)
	return m
}
