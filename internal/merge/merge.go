package merge

import "errors"

// ErrUnsupportedShape is returned by MergeDocuments under PolicyArrayOnly
// when a common file pair is not array+array. The caller records the file
// as skipped; no output is written for it.
var ErrUnsupportedShape = errors.New("unsupported shape for array-only policy")

// MergeDocuments combines the parsed contents of a common file pair at
// the top level. Both documents must have parsed (non-opaque); opaque
// pairs take the raw concatenation path before this is called.
//
// Under PolicyDeep a top-level shape mismatch produces the wrapper
// object {"from_a": A, "from_b": B}. Inside a recursive object merge,
// mismatched shapes instead resolve to the right-hand value.
func MergeDocuments(a, b Document, policy Policy) (any, error) {
	switch policy {
	case PolicyArrayOnly:
		if a.Kind != KindArray || b.Kind != KindArray {
			return nil, ErrUnsupportedShape
		}
		return mergeArrays(a.Array, b.Array), nil
	default:
		switch {
		case a.Kind == KindArray && b.Kind == KindArray:
			return mergeArrays(a.Array, b.Array), nil
		case a.Kind == KindObject && b.Kind == KindObject:
			return mergeObjects(a.Object, b.Object), nil
		default:
			return map[string]any{"from_a": a.Value(), "from_b": b.Value()}, nil
		}
	}
}

// deepMerge combines two decoded JSON values recursively. Array pairs
// concatenate with dedup, object pairs merge key-wise, and any other
// pairing resolves to b.
func deepMerge(a, b any) any {
	if aArr, ok := a.([]any); ok {
		if bArr, ok := b.([]any); ok {
			return mergeArrays(aArr, bArr)
		}
	}
	if aObj, ok := a.(map[string]any); ok {
		if bObj, ok := b.(map[string]any); ok {
			return mergeObjects(aObj, bObj)
		}
	}
	return b
}

// mergeArrays concatenates a then b, dropping any element whose
// canonical serialization already appeared earlier. First occurrence
// order is preserved.
func mergeArrays(a, b []any) []any {
	merged := make([]any, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, src := range [2][]any{a, b} {
		for _, e := range src {
			key := canonicalJSON(e)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, e)
		}
	}
	return merged
}

// mergeObjects performs the key-wise recursive merge. Keys only in a
// keep a's value; keys only in b take b's value; shared keys recurse.
// Neither input map is mutated.
func mergeObjects(a, b map[string]any) map[string]any {
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, vb := range b {
		if va, ok := merged[k]; ok {
			merged[k] = deepMerge(va, vb)
		} else {
			merged[k] = vb
		}
	}
	return merged
}
