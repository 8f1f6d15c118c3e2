// Package main implements the treegen CLI.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/treegen/internal/config"
	"github.com/taigrr/treegen/internal/ignore"
	"github.com/taigrr/treegen/internal/scaffold"
	"github.com/taigrr/treegen/internal/snapshot"
	"github.com/taigrr/treegen/internal/types"
)

var (
	flagDir       string
	flagLevel     int
	flagGitignore bool
	flagDryRun    bool
	flagQuiet     bool
	flagStdout    bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "treegen [diagram-file]",
		Short: "Scaffold files and directories from a tree diagram",
		Long: `treegen reads a plain-text directory-tree diagram, the kind found in
documentation or produced by the tree command, and creates the matching
files and directories under a target directory. Entries that already
exist, exceed the depth limit, or match ignore rules are skipped and
reported.`,
		Example: `  treegen layout.txt --dir ./project
  cat layout.txt | treegen - --level 2 --gitignore
  treegen layout.txt --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScaffold,
	}
	cmd.Flags().StringVarP(&flagDir, "dir", "d", ".", "Target directory to create entries under")
	cmd.Flags().IntVarP(&flagLevel, "level", "l", 0, "Skip entries deeper than this level (0 = unlimited)")
	cmd.Flags().BoolVarP(&flagGitignore, "gitignore", "g", false, "Skip entries matching the target directory's .gitignore")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Decide and report without writing to disk")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress per-line output")

	cmd.AddCommand(newSnapshotCmd(), newMCPCmd())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runScaffold(cmd *cobra.Command, args []string) error {
	rootDir, err := resolveTargetDir(flagDir)
	if err != nil {
		return err
	}

	lines, err := readDiagram(args)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("diagram is empty")
	}

	// Flags win over the optional .treegen.yaml in the target directory.
	cfg := config.Load(rootDir)
	level := flagLevel
	if !cmd.Flags().Changed("level") && cfg.Level > 0 {
		level = cfg.Level
	}
	useGitignore := flagGitignore || cfg.Gitignore

	var gitignorePath string
	if useGitignore {
		gitignorePath = filepath.Join(rootDir, ".gitignore")
	}
	matcher := ignore.Load(gitignorePath)
	matcher.AddAll(cfg.Ignore)

	svc := scaffold.New(rootDir, scaffold.Options{
		LevelLimit: level,
		DryRun:     flagDryRun,
		Matcher:    matcher,
	})

	sum, runErr := svc.Run(lines)
	if !flagQuiet {
		printReports(cmd.OutOrStdout(), sum)
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d created, %d existing, %d beyond level %d, %d ignored\n",
		sum.Created, sum.SkippedExists, sum.SkippedDepth, level, sum.SkippedIgnored)
	return nil
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [dir]",
		Short: "Write a JSON representation of an existing directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			rootDir, err := resolveTargetDir(dir)
			if err != nil {
				return err
			}

			var gitignorePath string
			if flagGitignore {
				gitignorePath = filepath.Join(rootDir, ".gitignore")
			}
			nodes, err := snapshot.Build(rootDir, ignore.Load(gitignorePath))
			if err != nil {
				return err
			}

			if flagStdout {
				return snapshot.Write(cmd.OutOrStdout(), nodes)
			}
			out, err := snapshot.WriteFile(rootDir, nodes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Directory tree JSON written to: %s\n", out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagStdout, "stdout", false, "Print JSON to stdout instead of writing "+snapshot.OutputFile)
	cmd.Flags().BoolVarP(&flagGitignore, "gitignore", "g", false, "Omit entries matching the directory's .gitignore")
	return cmd
}

// resolveTargetDir validates that dir exists and is a directory.
func resolveTargetDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("target directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("target %s is not a directory", dir)
	}
	return abs, nil
}

// readDiagram reads the diagram from the named file, or stdin when the
// argument is "-" or absent. Blank lines are dropped here so the
// interpreter never sees them.
func readDiagram(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open diagram file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read diagram: %w", err)
	}
	return lines, nil
}

func printReports(w io.Writer, sum types.Summary) {
	for _, r := range sum.Reports {
		path := r.Path
		if path == "" {
			path = "."
		}
		switch r.Outcome {
		case types.OutcomeCreated:
			fmt.Fprintf(w, "created %-4s %s\n", r.Kind, path)
		case types.OutcomeSkippedExists:
			fmt.Fprintf(w, "exists       %s\n", path)
		case types.OutcomeSkippedDepth:
			fmt.Fprintf(w, "beyond level %s\n", path)
		case types.OutcomeSkippedIgnored:
			fmt.Fprintf(w, "ignored      %s\n", path)
		}
	}
}
