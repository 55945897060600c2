// Package validate inspects a directory of archive files and reports
// which ones parse as JSON and what shape they carry.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dkrahn/archivekit/internal/merge"
)

// FileInfo describes one scanned file.
type FileInfo struct {
	Name     string     `json:"name"`
	Kind     merge.Kind `json:"-"`
	KindName string     `json:"kind"`
	// Elements is the entry count for arrays and the key count for
	// objects; zero otherwise.
	Elements int `json:"elements,omitempty"`
}

// Summary aggregates a directory scan.
type Summary struct {
	Files   []FileInfo `json:"files"`
	Arrays  int        `json:"arrays"`
	Objects int        `json:"objects"`
	Scalars int        `json:"scalars"`
	Opaque  int        `json:"opaque"`
}

// Scan reads every regular file directly inside dir and classifies it.
// Opaque files are reported, not treated as errors; only a missing or
// unreadable directory fails the scan.
func Scan(dir string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	summary := &Summary{}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		doc := merge.ParseDocument(data)
		info := FileInfo{Name: e.Name(), Kind: doc.Kind, KindName: doc.Kind.String()}
		switch doc.Kind {
		case merge.KindArray:
			info.Elements = len(doc.Array)
			summary.Arrays++
		case merge.KindObject:
			info.Elements = len(doc.Object)
			summary.Objects++
		case merge.KindScalar:
			summary.Scalars++
		default:
			summary.Opaque++
		}
		summary.Files = append(summary.Files, info)
	}

	sort.Slice(summary.Files, func(i, j int) bool {
		return summary.Files[i].Name < summary.Files[j].Name
	})
	return summary, nil
}
