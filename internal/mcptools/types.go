package mcptools

// --- MCP Tool Types for the archivekit server mode (--serve-mcp) ---
// These tools are exposed when the binary runs as an MCP server on
// stdio, so an agent can drive the archive workflow with structured
// calls instead of shelling out.

import (
	"github.com/dkrahn/archivekit/internal/export"
	"github.com/dkrahn/archivekit/internal/validate"
)

// MergeInput is the input for the merge_directories MCP tool.
type MergeInput struct {
	SourceA string `json:"sourceA" jsonschema:"first source directory"`
	SourceB string `json:"sourceB" jsonschema:"second source directory"`
	Dest    string `json:"dest,omitempty" jsonschema:"destination directory (default: merged_out)"`
	Policy  string `json:"policy,omitempty" jsonschema:"merge policy: deep or array-only (default: deep)"`
}

// MergeOutput is the result of the merge_directories MCP tool.
type MergeOutput struct {
	Status string               `json:"status"` // "completed" or "failed"
	Report *export.ReportExport `json:"report,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// ValidateInput is the input for the validate_directory MCP tool.
type ValidateInput struct {
	Dir string `json:"dir" jsonschema:"directory of archive files to scan"`
}

// ValidateOutput is the result of the validate_directory MCP tool.
type ValidateOutput struct {
	Summary *validate.Summary `json:"summary"`
}

// SampleInput is the input for the sample_files MCP tool.
type SampleInput struct {
	Dir   string `json:"dir" jsonschema:"directory to sample from"`
	Count int    `json:"count,omitempty" jsonschema:"number of files to sample (default: 3)"`
}

// SampleOutput is the result of the sample_files MCP tool.
type SampleOutput struct {
	Names   []string `json:"names"`
	Content string   `json:"content"`
}
