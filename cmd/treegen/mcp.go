package main

import (
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// targetDir is the directory the MCP tools operate under, fixed at
// server start so clients cannot steer writes elsewhere.
var targetDir string

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp [target-dir]",
		Short: "Serve the scaffolder over the Model Context Protocol",
		Long: `Runs an MCP server on stdio exposing the diagram interpreter to any
MCP-compatible client. All tools operate relative to the target
directory given at startup.`,
		Example: "  treegen mcp ./project",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		targetDir = args[0]
	} else {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	var err error
	targetDir, err = resolveTargetDir(targetDir)
	if err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "treegen",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
