package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doc is a test helper that parses a JSON literal and fails the test on
// opaque input (use rawDoc for deliberately broken JSON).
func doc(t *testing.T, src string) Document {
	t.Helper()
	d := ParseDocument([]byte(src))
	require.NotEqual(t, KindOpaque, d.Kind, "fixture %q should be valid JSON", src)
	return d
}

func TestParseDocument_Kinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Kind
	}{
		{"array", `[1,2,3]`, KindArray},
		{"object", `{"a":1}`, KindObject},
		{"string", `"hello"`, KindScalar},
		{"number", `42`, KindScalar},
		{"null", `null`, KindScalar},
		{"unquoted text", `hello`, KindOpaque},
		{"truncated", `{"a":`, KindOpaque},
		{"trailing garbage", `{"a":1} extra`, KindOpaque},
		{"empty", ``, KindOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDocument([]byte(tt.src)).Kind)
		})
	}
}

func TestMergeDocuments_ArrayDedup(t *testing.T) {
	a := doc(t, `[1,2,3]`)
	b := doc(t, `[2,3,4]`)

	got, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, got)
}

func TestMergeDocuments_ArrayDedup_FirstOccurrenceOrder(t *testing.T) {
	a := doc(t, `[{"id":2},{"id":1}]`)
	b := doc(t, `[{"id":1},{"id":3},{"id":2}]`)

	got, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"id": 2.0},
		map[string]any{"id": 1.0},
		map[string]any{"id": 3.0},
	}, got)
}

func TestMergeDocuments_ArraySelfMerge_Idempotent(t *testing.T) {
	a := doc(t, `[{"id":1,"subject":"x"},"plain",7]`)

	got, err := MergeDocuments(a, a, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, a.Array, got)
}

func TestMergeDocuments_ObjectRecursive(t *testing.T) {
	a := doc(t, `{"x":{"a":1}}`)
	b := doc(t, `{"x":{"b":2}}`)

	got, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"x": map[string]any{"a": 1.0, "b": 2.0},
	}, got)
}

func TestMergeDocuments_KeysOnlyInAKept(t *testing.T) {
	a := doc(t, `{"keep":{"nested":true},"shared":"old"}`)
	b := doc(t, `{"shared":"new"}`)

	got, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	obj, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"nested": true}, obj["keep"])
	assert.Equal(t, "new", obj["shared"], "B wins on conflicting scalars")
}

func TestMergeDocuments_NotCommutative(t *testing.T) {
	a := doc(t, `{"k":"from-a"}`)
	b := doc(t, `{"k":"from-b"}`)

	ab, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	ba, err := MergeDocuments(b, a, PolicyDeep)
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba)
}

func TestMergeDocuments_TopLevelMixedShape(t *testing.T) {
	a := doc(t, `{"a":1}`)
	b := doc(t, `[1,2]`)

	got, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"from_a": map[string]any{"a": 1.0},
		"from_b": []any{1.0, 2.0},
	}, got)
}

func TestMergeDocuments_NestedMixedShape_RightWins(t *testing.T) {
	// The from_a/from_b wrapper only applies at the top level; inside a
	// recursive merge the right operand replaces the left.
	a := doc(t, `{"x":[1,2]}`)
	b := doc(t, `{"x":{"replaced":true}}`)

	got, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"x": map[string]any{"replaced": true},
	}, got)
}

func TestMergeDocuments_ArrayOnly(t *testing.T) {
	t.Run("arrays merge", func(t *testing.T) {
		got, err := MergeDocuments(doc(t, `["a"]`), doc(t, `["a","b"]`), PolicyArrayOnly)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, got)
	})

	t.Run("objects skip", func(t *testing.T) {
		_, err := MergeDocuments(doc(t, `{"a":1}`), doc(t, `{"b":2}`), PolicyArrayOnly)
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})

	t.Run("array+object skips", func(t *testing.T) {
		_, err := MergeDocuments(doc(t, `[1]`), doc(t, `{"b":2}`), PolicyArrayOnly)
		assert.ErrorIs(t, err, ErrUnsupportedShape)
	})
}

func TestMergeObjects_InputsNotMutated(t *testing.T) {
	a := doc(t, `{"x":{"a":1}}`)
	b := doc(t, `{"x":{"b":2}}`)

	_, err := MergeDocuments(a, b, PolicyDeep)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": map[string]any{"a": 1.0}}, a.Object)
	assert.Equal(t, map[string]any{"x": map[string]any{"b": 2.0}}, b.Object)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("deep")
	require.NoError(t, err)
	assert.Equal(t, PolicyDeep, p)

	p, err = ParsePolicy("array-only")
	require.NoError(t, err)
	assert.Equal(t, PolicyArrayOnly, p)

	_, err = ParsePolicy("shallow")
	assert.Error(t, err)
}
