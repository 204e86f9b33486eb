package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/depgraph/internal/graph"
	"github.com/specialistvlad/depgraph/internal/graphtext"
	"github.com/stretchr/testify/require"
)

// WriteFiles creates a temporary directory holding files, keyed by their
// slash-separated path relative to the directory, and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

// MustParseGraph parses a graph description, failing the test on error.
func MustParseGraph(t *testing.T, text string) *graph.Node {
	t.Helper()

	root, err := graphtext.ParseString(text)
	require.NoError(t, err)
	return root
}
