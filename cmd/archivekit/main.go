package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dkrahn/archivekit/internal/mcptools"
)

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "--version", "-version", "version":
		fmt.Println(version)
		return nil
	case "--serve-mcp", "-serve-mcp":
		return runServeMCP()
	case "merge":
		return runMerge(args[1:])
	case "sample":
		return runSample(args[1:])
	case "validate":
		return runValidate(args[1:])
	case "promote":
		return runPromote(args[1:])
	case "watch":
		return runWatch(args[1:])
	case "init":
		return runInit(args[1:])
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runServeMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := mcptools.NewArchiveMCPServer(version)
	return mcptools.RunArchiveMCPServerStdio(ctx, server)
}

func printUsage() {
	fmt.Println(`archivekit - message archive maintenance toolkit

Usage:
  archivekit merge <sourceA> <sourceB> [flags]   merge two archive directories
  archivekit sample <dir> [flags]                pull a random batch of files for review
  archivekit validate <dir>                      report the JSON shape of each file
  archivekit promote [flags]                     move fixed messages into the loadable folder
  archivekit watch <sourceA> <sourceB> [flags]   re-merge whenever a source changes
  archivekit init [--force]                      write a starter archivekit.yml and .mcp.json entry
  archivekit --serve-mcp                         run as an MCP server on stdio
  archivekit --version                           print version

Run 'archivekit <command> -h' for command flags.`)
}
