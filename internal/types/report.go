package types

type (
	// LineReport is the per-line record handed to the reporting layer.
	LineReport struct {
		Path    string  `json:"path"`
		Depth   int     `json:"depth"`
		Outcome Outcome `json:"outcome"`
		Kind    Kind    `json:"kind,omitempty"`
	}

	// Summary aggregates the reports of one diagram run.
	Summary struct {
		Reports        []LineReport `json:"reports"`
		Created        int          `json:"created"`
		SkippedDepth   int          `json:"skippedDepth"`
		SkippedExists  int          `json:"skippedExists"`
		SkippedIgnored int          `json:"skippedIgnored"`
	}
)

// Add appends a report and bumps the matching counter.
func (s *Summary) Add(r LineReport) {
	s.Reports = append(s.Reports, r)
	switch r.Outcome {
	case OutcomeCreated:
		s.Created++
	case OutcomeSkippedDepth:
		s.SkippedDepth++
	case OutcomeSkippedExists:
		s.SkippedExists++
	case OutcomeSkippedIgnored:
		s.SkippedIgnored++
	}
}
