// Package types defines all data structures shared across treegen.
package types

type (
	// Outcome is the terminal state of processing one diagram line.
	Outcome string

	// Kind classifies a materialized entry.
	Kind string
)

const (
	// OutcomeCreated means the entry was materialized on disk.
	OutcomeCreated Outcome = "created"
	// OutcomeSkippedDepth means the entry was deeper than the level limit.
	OutcomeSkippedDepth Outcome = "skipped-depth"
	// OutcomeSkippedExists means an entry already existed at the path.
	OutcomeSkippedExists Outcome = "skipped-exists"
	// OutcomeSkippedIgnored means an ignore rule matched the path.
	OutcomeSkippedIgnored Outcome = "skipped-ignored"
)

const (
	// KindFile is an empty regular file.
	KindFile Kind = "file"
	// KindDirectory is a directory.
	KindDirectory Kind = "dir"
)
