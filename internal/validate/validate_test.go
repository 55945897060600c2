package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkrahn/archivekit/internal/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Classification(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"messages.json": `[{"id":1},{"id":2},{"id":3}]`,
		"profile.json":  `{"name":"x","year":2019}`,
		"note.txt":      "just some text",
		"flag.json":     `true`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	s, err := Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Arrays)
	assert.Equal(t, 1, s.Objects)
	assert.Equal(t, 1, s.Scalars)
	assert.Equal(t, 1, s.Opaque)
	require.Len(t, s.Files, 4)

	// Sorted by name: flag, messages, note, profile.
	assert.Equal(t, "flag.json", s.Files[0].Name)
	assert.Equal(t, merge.KindScalar, s.Files[0].Kind)
	assert.Equal(t, "messages.json", s.Files[1].Name)
	assert.Equal(t, 3, s.Files[1].Elements)
	assert.Equal(t, "note.txt", s.Files[2].Name)
	assert.Equal(t, "opaque", s.Files[2].KindName)
	assert.Equal(t, "profile.json", s.Files[3].Name)
	assert.Equal(t, 2, s.Files[3].Elements)
}

func TestScan_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "x.json"), []byte(`[]`), 0o644))

	s, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Files)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
