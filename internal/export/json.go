// Package export renders merge reports as machine-readable JSON for the
// --json flag and the MCP tools.
package export

import (
	"encoding/json"
	"time"

	"github.com/dkrahn/archivekit/internal/merge"
)

// ReportExport is the top-level JSON structure for a merge run.
type ReportExport struct {
	Tool       string          `json:"tool"`
	ExportedAt string          `json:"exportedAt"`
	SourceA    string          `json:"sourceA"`
	SourceB    string          `json:"sourceB"`
	Dest       string          `json:"dest"`
	Policy     string          `json:"policy"`
	Counts     CountsExport    `json:"counts"`
	Skipped    []merge.Skipped `json:"skipped,omitempty"`
	Written    []string        `json:"written"`
}

// CountsExport breaks down the per-file outcomes.
type CountsExport struct {
	CopiedOnlyA          int `json:"copiedOnlyA"`
	CopiedOnlyB          int `json:"copiedOnlyB"`
	MergedAsJSON         int `json:"mergedAsJSON"`
	FallbackConcatenated int `json:"fallbackConcatenated"`
	Skipped              int `json:"skipped"`
	TotalWritten         int `json:"totalWritten"`
}

// FromReport builds a ReportExport from a finished run.
func FromReport(opts merge.Options, r *merge.Report) *ReportExport {
	return &ReportExport{
		Tool:       "archivekit",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		SourceA:    opts.SourceA,
		SourceB:    opts.SourceB,
		Dest:       opts.Dest,
		Policy:     opts.Policy.String(),
		Counts: CountsExport{
			CopiedOnlyA:          r.CopiedA,
			CopiedOnlyB:          r.CopiedB,
			MergedAsJSON:         r.Merged,
			FallbackConcatenated: r.Concatenated,
			Skipped:              len(r.Skipped),
			TotalWritten:         r.TotalWritten(),
		},
		Skipped: r.Skipped,
		Written: r.Written,
	}
}

// Marshal renders the export with the usual two-space indentation and a
// trailing newline.
func (e *ReportExport) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
