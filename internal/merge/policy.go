package merge

import "fmt"

// Policy selects how same-named files from the two sources are combined.
type Policy int

const (
	// PolicyDeep merges arrays by deduplicated concatenation, objects
	// key-wise recursively, and wraps mismatched shapes.
	PolicyDeep Policy = iota
	// PolicyArrayOnly merges array pairs only; any other valid-JSON
	// pairing is skipped.
	PolicyArrayOnly
)

func (p Policy) String() string {
	switch p {
	case PolicyArrayOnly:
		return "array-only"
	default:
		return "deep"
	}
}

// ParsePolicy maps the CLI spelling to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "deep":
		return PolicyDeep, nil
	case "array-only":
		return PolicyArrayOnly, nil
	default:
		return PolicyDeep, fmt.Errorf("unknown policy %q (want deep or array-only)", s)
	}
}
