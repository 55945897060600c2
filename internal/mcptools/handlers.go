package mcptools

import (
	"bytes"
	"context"
	"math/rand"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dkrahn/archivekit/internal/export"
	"github.com/dkrahn/archivekit/internal/merge"
	"github.com/dkrahn/archivekit/internal/sample"
	"github.com/dkrahn/archivekit/internal/validate"
)

// ArchiveService handles MCP tool calls for the archivekit server mode.
type ArchiveService struct{}

// NewArchiveService creates an ArchiveService.
func NewArchiveService() *ArchiveService {
	return &ArchiveService{}
}

// Merge runs a directory merge and returns the report.
func (s *ArchiveService) Merge(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MergeInput,
) (*mcp.CallToolResult, MergeOutput, error) {
	policy := merge.PolicyDeep
	if input.Policy != "" {
		var err error
		policy, err = merge.ParsePolicy(input.Policy)
		if err != nil {
			return nil, MergeOutput{Status: "failed", Error: err.Error()}, err
		}
	}

	dest := input.Dest
	if dest == "" {
		dest = "merged_out"
	}

	opts := merge.Options{
		SourceA: input.SourceA,
		SourceB: input.SourceB,
		Dest:    dest,
		Policy:  policy,
	}
	report, err := merge.New(opts).Run(ctx)
	if err != nil {
		return nil, MergeOutput{Status: "failed", Error: err.Error()}, nil
	}

	return nil, MergeOutput{
		Status: "completed",
		Report: export.FromReport(opts, report),
	}, nil
}

// Validate scans a directory and reports the shape of each file.
func (s *ArchiveService) Validate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	summary, err := validate.Scan(input.Dir)
	if err != nil {
		return nil, ValidateOutput{}, err
	}
	return nil, ValidateOutput{Summary: summary}, nil
}

// Sample returns a random batch of files for review.
func (s *ArchiveService) Sample(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SampleInput,
) (*mcp.CallToolResult, SampleOutput, error) {
	count := input.Count
	if count <= 0 {
		count = 3
	}

	var buf bytes.Buffer
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	names, err := sample.Run(input.Dir, count, rng, &buf)
	if err != nil {
		return nil, SampleOutput{}, err
	}
	return nil, SampleOutput{Names: names, Content: buf.String()}, nil
}
