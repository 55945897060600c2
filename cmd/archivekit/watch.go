package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dkrahn/archivekit/internal/config"
	"github.com/dkrahn/archivekit/internal/merge"
	"github.com/dkrahn/archivekit/internal/watch"
)

func runWatch(args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading archivekit.yml: %w", err)
	}

	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	dest := fs.String("dest", defaultStr(cfg.DestDir, "merged_out"), "destination directory")
	policyName := fs.String("policy", defaultStr(cfg.Policy, "deep"), "merge policy: deep or array-only")
	debounce := fs.Duration("debounce", watch.DefaultDebounce, "settle time after a change before re-merging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: archivekit watch <sourceA> <sourceB> [flags]")
	}

	policy, err := merge.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	opts := merge.Options{
		SourceA: fs.Arg(0),
		SourceB: fs.Arg(1),
		Dest:    *dest,
		Policy:  policy,
		Out:     os.Stdout,
	}

	remerge := func(ctx context.Context) error {
		report, err := merge.New(opts).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("[%s] wrote %d files to %s\n",
			time.Now().Format("15:04:05"), report.TotalWritten(), *dest)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// One merge up front so the destination is current before watching.
	if err := remerge(ctx); err != nil {
		return err
	}

	fmt.Printf("Watching %s and %s (Ctrl-C to stop)\n", fs.Arg(0), fs.Arg(1))
	return watch.Run(ctx, watch.Options{
		Dirs:     []string{fs.Arg(0), fs.Arg(1)},
		Debounce: *debounce,
		Out:      os.Stdout,
	}, remerge)
}
