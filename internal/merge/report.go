package merge

// Outcome classifies what happened to one filename during a run.
type Outcome int

const (
	OutcomeCopiedA Outcome = iota
	OutcomeCopiedB
	OutcomeMerged
	OutcomeConcatenated
	OutcomeSkipped
)

// Skipped records a file that produced no output, with the reason.
type Skipped struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report is the externally observable result of a merge run besides the
// written files themselves.
type Report struct {
	CopiedA      int       `json:"copiedOnlyA"`
	CopiedB      int       `json:"copiedOnlyB"`
	Merged       int       `json:"mergedAsJSON"`
	Concatenated int       `json:"fallbackConcatenated"`
	Skipped      []Skipped `json:"skipped,omitempty"`
	Written      []string  `json:"written"`
}

// TotalWritten is the number of files that landed in the destination.
func (r *Report) TotalWritten() int {
	return len(r.Written)
}

// add folds one per-file result into the report.
func (r *Report) add(name string, outcome Outcome, reason string) {
	switch outcome {
	case OutcomeCopiedA:
		r.CopiedA++
	case OutcomeCopiedB:
		r.CopiedB++
	case OutcomeMerged:
		r.Merged++
	case OutcomeConcatenated:
		r.Concatenated++
	case OutcomeSkipped:
		r.Skipped = append(r.Skipped, Skipped{Name: name, Reason: reason})
		return
	}
	r.Written = append(r.Written, name)
}
