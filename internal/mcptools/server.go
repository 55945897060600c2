package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewArchiveMCPServer creates an MCP server with the 3 archivekit tools
// registered: merge_directories, validate_directory, and sample_files.
func NewArchiveMCPServer(version string) *mcp.Server {
	svc := NewArchiveService()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "archivekit",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_directories",
		Description: "Merge two directories of JSON archive files into a destination directory. Returns the merge report.",
	}, svc.Merge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_directory",
		Description: "Scan a directory of archive files and report which parse as JSON arrays/objects and which are opaque.",
	}, svc.Validate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sample_files",
		Description: "Pick a random batch of files from a directory (without replacement) and return their contents for review.",
	}, svc.Sample)

	return server
}

// RunArchiveMCPServerStdio runs the MCP server on stdio transport,
// blocking until stdin is closed or the context is cancelled.
func RunArchiveMCPServerStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
