package main

import (
	"flag"
	"fmt"

	"github.com/dkrahn/archivekit/internal/config"
	"github.com/dkrahn/archivekit/internal/promote"
)

func runPromote(args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading archivekit.yml: %w", err)
	}

	fs := flag.NewFlagSet("promote", flag.ContinueOnError)
	from := fs.String("from", defaultStr(cfg.FixedDir, "fixed"), "directory of fixed message files")
	to := fs.String("to", defaultStr(cfg.LoadableDir, "loadable"), "destination directory")
	dryRun := fs.Bool("dry-run", false, "report what would move without moving anything")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := promote.Run(*from, *to, *dryRun)
	if err != nil {
		return err
	}

	verb := "moved"
	if *dryRun {
		verb = "would move"
	}
	for _, name := range res.Moved {
		fmt.Printf("  %s %s\n", verb, name)
	}
	for _, name := range res.Collisions {
		fmt.Printf("  kept %s (already exists in %s)\n", name, *to)
	}
	fmt.Printf("%s %d file(s), skipped %d loaded, %d collision(s)\n",
		verb, len(res.Moved), len(res.SkippedLoaded), len(res.Collisions))
	return nil
}
