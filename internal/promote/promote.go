// Package promote moves reviewed "fixed" message files into the
// loadable folder. A file already carrying the .loaded suffix has been
// through the loader and is left alone.
package promote

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadedSuffix marks files that have already been loaded downstream.
const LoadedSuffix = ".loaded"

// Result lists what a promote run did (or, in dry-run mode, would do).
type Result struct {
	Moved         []string `json:"moved"`
	SkippedLoaded []string `json:"skippedLoaded,omitempty"`
	Collisions    []string `json:"collisions,omitempty"`
}

// Run moves every regular file in fixedDir that does not end in
// LoadedSuffix into destDir, creating destDir if needed. A name that
// already exists in destDir is never overwritten; it is recorded as a
// collision and left in place. With dryRun set, nothing moves and the
// Result reports what would have happened.
func Run(fixedDir, destDir string, dryRun bool) (*Result, error) {
	entries, err := os.ReadDir(fixedDir)
	if err != nil {
		return nil, fmt.Errorf("reading fixed directory %s: %w", fixedDir, err)
	}

	if !dryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating destination %s: %w", destDir, err)
		}
	}

	res := &Result{}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.HasSuffix(name, LoadedSuffix) {
			res.SkippedLoaded = append(res.SkippedLoaded, name)
			continue
		}

		target := filepath.Join(destDir, name)
		if _, err := os.Stat(target); err == nil {
			res.Collisions = append(res.Collisions, name)
			continue
		}

		if !dryRun {
			if err := os.Rename(filepath.Join(fixedDir, name), target); err != nil {
				return nil, fmt.Errorf("moving %s: %w", name, err)
			}
		}
		res.Moved = append(res.Moved, name)
	}
	return res, nil
}
