package merge

import (
	"encoding/json"
	"sort"
	"strings"
)

// canonicalJSON renders a decoded JSON value in a canonical textual form:
// object keys are sorted, array order is preserved, and scalars are
// re-marshaled from their decoded representation. Two values are
// structurally equal exactly when their canonical forms are identical.
//
// Numbers are decoded as float64 before rendering, so "1.0" and "1"
// canonicalize to the same text and compare equal.
func canonicalJSON(v any) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, v any) {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, k)
			sb.WriteByte(':')
			writeCanonical(sb, t[k])
		}
		sb.WriteByte('}')
	case []any:
		sb.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, e)
		}
		sb.WriteByte(']')
	default:
		// Scalars round-trip through encoding/json so strings are
		// escaped consistently and float64 values get the shortest
		// representation.
		b, err := json.Marshal(t)
		if err != nil {
			sb.WriteString("null")
			return
		}
		sb.Write(b)
	}
}
