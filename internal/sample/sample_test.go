package sample

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_WithoutReplacement(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewSource(1))

	picked := Pick(names, 3, rng)
	require.Len(t, picked, 3)

	seen := map[string]int{}
	for _, p := range picked {
		seen[p]++
		assert.Contains(t, names, p)
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "%s picked more than once", name)
	}
}

func TestPick_NLargerThanInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	picked := Pick([]string{"a", "b"}, 10, rng)
	assert.ElementsMatch(t, []string{"a", "b"}, picked)
}

func TestPick_DoesNotMutateInput(t *testing.T) {
	names := []string{"a", "b", "c"}
	Pick(names, 2, rand.New(rand.NewSource(42)))
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRun_DeterministicUnderSeed(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"m1.json", "m2.json", "m3.json", "m4.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`{"id":"`+name+`"}`), 0o644))
	}

	var out1, out2 bytes.Buffer
	picked1, err := Run(dir, 2, rand.New(rand.NewSource(7)), &out1)
	require.NoError(t, err)
	picked2, err := Run(dir, 2, rand.New(rand.NewSource(7)), &out2)
	require.NoError(t, err)

	assert.Equal(t, picked1, picked2)
	assert.Equal(t, out1.String(), out2.String())
}

func TestRun_OutputFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.json"), []byte(`{"a":1}`), 0o644))

	var out bytes.Buffer
	picked, err := Run(dir, 1, rand.New(rand.NewSource(1)), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"only.json"}, picked)
	assert.Equal(t, "=== only.json ===\n{\"a\":1}\n", out.String())
}

func TestRun_MissingDir(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "nope"), 1, rand.New(rand.NewSource(1)), &bytes.Buffer{})
	assert.Error(t, err)
}
