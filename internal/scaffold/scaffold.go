// Package scaffold interprets diagram lines and materializes the
// corresponding files and directories under a root directory.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/treegen/internal/glyph"
	"github.com/taigrr/treegen/internal/ignore"
	"github.com/taigrr/treegen/internal/tracker"
	"github.com/taigrr/treegen/internal/types"
)

// Decision is the placement verdict for one parsed line. Skip decisions
// are informational outcomes, never errors.
type Decision int

const (
	DecisionCreate Decision = iota
	DecisionSkipDepth
	DecisionSkipExists
	DecisionSkipIgnored
)

// Options configures a scaffolding session.
type Options struct {
	// LevelLimit skips entries deeper than this; 0 means unlimited.
	LevelLimit int
	// DryRun classifies and decides but writes nothing to disk.
	DryRun bool
	// Matcher supplies ignore rules; nil matches nothing.
	Matcher *ignore.Matcher
}

// Service processes the lines of one diagram in order. It owns the path
// tracker, so a Service must not be reused across diagrams.
type Service struct {
	rootDir    string
	levelLimit int
	dryRun     bool
	matcher    *ignore.Matcher
	tracker    *tracker.Tracker
}

// New creates a Service rooted at rootDir, which must already exist as a
// directory. Callers are expected to pass an absolute path; a relative
// one is resolved best-effort against the working directory.
func New(rootDir string, opts Options) *Service {
	absPath, _ := filepath.Abs(rootDir)
	return &Service{
		rootDir:    absPath,
		levelLimit: opts.LevelLimit,
		dryRun:     opts.DryRun,
		matcher:    opts.Matcher,
		tracker:    tracker.New(),
	}
}

// RootDir returns the absolute root directory.
func (s *Service) RootDir() string {
	return s.rootDir
}

// Classify decides file versus directory from the final path segment: a
// segment containing a dot is a file, anything else a directory. This is
// a naming heuristic, not content detection — "Makefile" classifies as a
// directory and "v1.2" as a file. The behavior is load-bearing for
// existing diagrams and must not be corrected.
func Classify(rel string) types.Kind {
	base := rel
	if i := strings.LastIndex(rel, "/"); i != -1 {
		base = rel[i+1:]
	}
	if strings.Contains(base, ".") {
		return types.KindFile
	}
	return types.KindDirectory
}

// resolvePath joins rel onto the root and rejects results that escape it.
func (s *Service) resolvePath(rel string) (string, error) {
	full := filepath.Join(s.rootDir, rel)
	relBack, err := filepath.Rel(s.rootDir, full)
	if err != nil {
		return "", err
	}
	if relBack == ".." || strings.HasPrefix(relBack, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %s", rel)
	}
	return full, nil
}

// Decide applies the depth limit and the pre-existence check. Ignore
// evaluation is the caller's next stage.
func (s *Service) Decide(depth int, rel string) Decision {
	if s.levelLimit > 0 && depth > s.levelLimit {
		return DecisionSkipDepth
	}
	if full, err := s.resolvePath(rel); err == nil {
		if _, err := os.Lstat(full); err == nil {
			return DecisionSkipExists
		}
	}
	return DecisionCreate
}

// materialize creates the entry for rel. Directories are created with
// all missing parents; files are created empty after their parent
// directories. Any filesystem failure is fatal to the run.
func (s *Service) materialize(rel string) (types.Kind, error) {
	full, err := s.resolvePath(rel)
	if err != nil {
		return "", err
	}

	kind := Classify(rel)
	if kind == types.KindDirectory {
		if err := os.MkdirAll(full, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", rel, err)
		}
		return kind, nil
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create parent directory for %s: %w", rel, err)
	}
	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", rel, err)
	}
	return kind, nil
}

// ProcessLine runs one diagram line through the full pipeline:
// parse, placement check, ignore check, materialize. Skip outcomes
// short-circuit the later stages. The line must not be blank.
func (s *Service) ProcessLine(raw string) (types.LineReport, error) {
	depth, name := glyph.Strip(raw)
	rel, err := s.tracker.Track(depth, name)
	if err != nil {
		return types.LineReport{Depth: depth}, fmt.Errorf("malformed diagram: %w", err)
	}
	report := types.LineReport{Path: rel, Depth: depth}

	switch s.Decide(depth, rel) {
	case DecisionSkipDepth:
		report.Outcome = types.OutcomeSkippedDepth
		return report, nil
	case DecisionSkipExists:
		report.Outcome = types.OutcomeSkippedExists
		return report, nil
	}

	if s.matcher.Match(rel) {
		report.Outcome = types.OutcomeSkippedIgnored
		return report, nil
	}

	if s.dryRun {
		report.Outcome = types.OutcomeCreated
		report.Kind = Classify(rel)
		return report, nil
	}

	kind, err := s.materialize(rel)
	if err != nil {
		return report, err
	}
	report.Outcome = types.OutcomeCreated
	report.Kind = kind
	return report, nil
}

// Run processes diagram lines in order, skipping blank lines, and stops
// at the first materialization failure. The summary accumulated so far
// is returned alongside the error.
func (s *Service) Run(lines []string) (types.Summary, error) {
	var sum types.Summary
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		report, err := s.ProcessLine(line)
		if err != nil {
			return sum, err
		}
		sum.Add(report)
	}
	return sum, nil
}
