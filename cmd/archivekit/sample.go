package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dkrahn/archivekit/internal/config"
	"github.com/dkrahn/archivekit/internal/sample"
)

func runSample(args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading archivekit.yml: %w", err)
	}

	defaultCount := cfg.SampleCount
	if defaultCount <= 0 {
		defaultCount = 3
	}

	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	count := fs.Int("n", defaultCount, "number of files to sample")
	outPath := fs.String("out", "", "write the batch to a file instead of stdout")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: archivekit sample <dir> [flags]")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	picked, err := sample.Run(fs.Arg(0), *count, rng, out)
	if err != nil {
		return err
	}

	if *outPath != "" {
		fmt.Printf("Sampled %d file(s) to %s\n", len(picked), *outPath)
	}
	return nil
}
