package merge

import "github.com/wI2L/jsondiff"

// ChangeSummary computes the RFC 6902 patch that would transform the
// left-hand document into the merged result. It exists purely for
// progress output; diff failures are not run failures.
func ChangeSummary(before, merged any) (jsondiff.Patch, error) {
	return jsondiff.Compare(before, merged)
}

// logChanges prints what the merge changed relative to side A.
func (m *Merger) logChanges(name string, before, merged any) {
	patch, err := ChangeSummary(before, merged)
	if err != nil || len(patch) == 0 {
		return
	}
	m.logf("  %s: %d change(s) vs A", name, len(patch))
	for _, op := range patch {
		m.logf("    %s %s", op.Type, op.Path)
	}
}
