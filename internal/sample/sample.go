// Package sample pulls a random batch of archive files for manual
// review, without replacement.
package sample

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
)

// Pick returns n names chosen uniformly without replacement. When n
// meets or exceeds len(names), every name is returned. The input slice
// is not modified.
func Pick(names []string, n int, rng *rand.Rand) []string {
	shuffled := make([]string, len(names))
	copy(shuffled, names)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Run samples n regular files from dir and writes their contents to out,
// each preceded by a header line naming the file. Returns the sampled
// names in the order written.
func Run(dir string, n int, rng *rand.Rand, out io.Writer) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sample directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names) // stable input order so a seeded rng reproduces a batch

	picked := Pick(names, n, rng)
	for _, name := range picked {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if _, err := fmt.Fprintf(out, "=== %s ===\n", name); err != nil {
			return nil, err
		}
		if _, err := out.Write(data); err != nil {
			return nil, err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return nil, err
		}
	}
	return picked, nil
}
