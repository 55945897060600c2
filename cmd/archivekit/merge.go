package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dkrahn/archivekit/internal/config"
	"github.com/dkrahn/archivekit/internal/export"
	"github.com/dkrahn/archivekit/internal/merge"
)

// mergeFlags holds the merge subcommand's flags after config defaults
// have been applied.
type mergeFlags struct {
	Dest    string
	Policy  string
	Workers int
	JSON    bool
	Verbose bool
}

func runMerge(args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading archivekit.yml: %w", err)
	}

	var flags mergeFlags
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	fs.StringVar(&flags.Dest, "dest", defaultStr(cfg.DestDir, "merged_out"), "destination directory")
	fs.StringVar(&flags.Policy, "policy", defaultStr(cfg.Policy, "deep"), "merge policy: deep or array-only")
	fs.IntVar(&flags.Workers, "workers", cfg.Workers, "files processed concurrently (0 = default)")
	fs.BoolVar(&flags.JSON, "json", false, "print the report as JSON instead of a summary")
	fs.BoolVar(&flags.Verbose, "verbose", cfg.Verbose, "print a change summary per merged file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: archivekit merge <sourceA> <sourceB> [flags]")
	}

	policy, err := merge.ParsePolicy(flags.Policy)
	if err != nil {
		return err
	}

	var progress io.Writer = os.Stdout
	if flags.JSON {
		progress = io.Discard
	}

	opts := merge.Options{
		SourceA: fs.Arg(0),
		SourceB: fs.Arg(1),
		Dest:    flags.Dest,
		Policy:  policy,
		Workers: flags.Workers,
		Verbose: flags.Verbose,
		Out:     progress,
	}

	report, err := merge.New(opts).Run(context.Background())
	if err != nil {
		return err
	}

	if flags.JSON {
		out, err := export.FromReport(opts, report).Marshal()
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	printReport(report, flags.Dest)
	return nil
}

func printReport(r *merge.Report, dest string) {
	for _, s := range r.Skipped {
		fmt.Printf("skipped %s: %s\n", s.Name, s.Reason)
	}
	fmt.Printf("copied: %d from A, %d from B; merged: %d; concatenated: %d; skipped: %d\n",
		r.CopiedA, r.CopiedB, r.Merged, r.Concatenated, len(r.Skipped))
	fmt.Printf("Done. Wrote %d files to %s\n", r.TotalWritten(), dest)
}

func defaultStr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
