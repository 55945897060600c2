package merge

import (
	"fmt"
	"os"
	"sort"
)

// Class says which side(s) of the merge a filename appears on.
type Class int

const (
	OnlyLeft Class = iota
	OnlyRight
	Common
)

func (c Class) String() string {
	switch c {
	case OnlyLeft:
		return "only-left"
	case OnlyRight:
		return "only-right"
	default:
		return "common"
	}
}

// PlanEntry is one filename from the union of the two sources together
// with its classification.
type PlanEntry struct {
	Name  string
	Class Class
}

// FileSet lists the base names of the regular files directly inside dir.
// Subdirectories and non-regular entries are ignored; the scan is not
// recursive.
func FileSet(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		set[e.Name()] = struct{}{}
	}
	return set, nil
}

// Plan partitions the union of two file sets into OnlyLeft, OnlyRight
// and Common entries, sorted by name so runs are reproducible.
func Plan(left, right map[string]struct{}) []PlanEntry {
	plan := make([]PlanEntry, 0, len(left)+len(right))
	for name := range left {
		if _, ok := right[name]; ok {
			plan = append(plan, PlanEntry{Name: name, Class: Common})
		} else {
			plan = append(plan, PlanEntry{Name: name, Class: OnlyLeft})
		}
	}
	for name := range right {
		if _, ok := left[name]; !ok {
			plan = append(plan, PlanEntry{Name: name, Class: OnlyRight})
		}
	}

	sort.Slice(plan, func(i, j int) bool { return plan[i].Name < plan[j].Name })
	return plan
}
