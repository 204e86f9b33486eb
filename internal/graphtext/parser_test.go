package graphtext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/depgraph/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape renders a parsed tree back as indented artifact ids so whole
// structures can be compared with cmp.Diff.
func shape(n *graph.Node) []string {
	var out []string
	var walk func(n *graph.Node, depth int, seen map[*graph.Node]bool)
	walk = func(n *graph.Node, depth int, seen map[*graph.Node]bool) {
		label := "(null)"
		if a := n.Artifact(); a != nil {
			label = a.ArtifactID()
		}
		indent := ""
		for range depth {
			indent += "  "
		}
		if seen[n] {
			out = append(out, indent+label+" *")
			return
		}
		out = append(out, indent+label)
		seen[n] = true
		for _, c := range n.Children() {
			walk(c, depth+1, seen)
		}
		delete(seen, n)
	}
	walk(n, 0, map[*graph.Node]bool{})
	return out
}

func TestParse_Tree(t *testing.T) {
	root, err := ParseString(`
# a small tree
g:a:jar:1.0:compile
+- g:b:jar:1.0:compile
|  +- g:c:jar:1.0:runtime
|  \- g:d:jar:1.0:test
\- g:e:jar:1.0
   \- g:f:jar:1.0
`)
	require.NoError(t, err)

	want := []string{"a", "  b", "    c", "    d", "  e", "    f"}
	if diff := cmp.Diff(want, shape(root)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NodeFields(t *testing.T) {
	root, err := ParseString("org.x:lib:zip:2.0-SNAPSHOT:provided:optional ^lib storage=/repo/lib.zip lang=java kind=bundle\n")
	require.NoError(t, err)

	dep := root.Dependency()
	require.NotNil(t, dep)
	assert.Equal(t, "provided", dep.Scope())
	assert.True(t, dep.Optional())

	a := dep.Artifact()
	assert.Equal(t, "org.x", a.GroupID())
	assert.Equal(t, "lib", a.ArtifactID())
	assert.Equal(t, "zip", a.Extension())
	assert.Equal(t, "2.0-SNAPSHOT", a.Version())
	assert.Equal(t, "/repo/lib.zip", a.Storage())
	assert.Equal(t, map[string]string{"lang": "java", "kind": "bundle"}, a.Properties())
}

func TestParse_NullRoot(t *testing.T) {
	root, err := ParseString("(null)\n+- g:a:jar:1\n\\- g:b:jar:1\n")
	require.NoError(t, err)
	assert.Nil(t, root.Dependency())
	assert.Equal(t, "(null)", root.String())
	assert.Len(t, root.Children(), 2)
}

func TestParse_ReferenceSharesNode(t *testing.T) {
	root, err := ParseString(`
g:a:jar:1
+- g:b:jar:1 ^b
|  \- g:c:jar:1
\- ^b
`)
	require.NoError(t, err)

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Same(t, kids[0], kids[1])
}

func TestParse_ReferenceCycle(t *testing.T) {
	root, err := ParseString(`
g:a:jar:1
\- g:b:jar:1 ^b
   \- g:c:jar:1
      \- ^b
`)
	require.NoError(t, err)

	b := root.Children()[0]
	c := b.Children()[0]
	assert.Same(t, b, c.Children()[0])

	want := []string{"a", "  b", "    c", "      b *"}
	if diff := cmp.Diff(want, shape(root)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"empty input", "", 0},
		{"only comments", "# nothing\n\n", 2},
		{"short coordinates", "g:a:1\n", 1},
		{"too many segments", "g:a:jar:1:compile:optional:extra\n", 1},
		{"empty segment", "g::jar:1\n", 1},
		{"bad optional flag", "g:a:jar:1:compile:maybe\n", 1},
		{"property without value", "g:a:jar:1 lang\n", 1},
		{"double anchor", "g:a:jar:1 ^x ^y\n", 1},
		{"duplicate anchor", "g:a:jar:1 ^x\n\\- g:b:jar:1 ^x\n", 2},
		{"unknown reference", "g:a:jar:1\n\\- ^nope\n", 2},
		{"text after reference", "g:a:jar:1 ^a\n\\- ^a extra\n", 2},
		{"reference as root", "^a\n", 1},
		{"multiple roots", "g:a:jar:1\ng:b:jar:1\n", 2},
		{"skipped level", "g:a:jar:1\n|  \\- g:b:jar:1\n", 2},
		{"children under reference", "g:a:jar:1\n+- g:b:jar:1 ^b\n\\- ^b\n   \\- g:c:jar:1\n", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.line, perr.Line)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Run("fixture", func(t *testing.T) {
		root, err := ParseFile(filepath.Join("testdata", "diamond.txt"))
		require.NoError(t, err)
		want := []string{"a", "  b", "    d", "  c", "    d"}
		if diff := cmp.Diff(want, shape(root)); diff != "" {
			t.Errorf("tree mismatch (-want +got):\n%s", diff)
		}
		b, c := root.Children()[0], root.Children()[1]
		assert.Same(t, b.Children()[0], c.Children()[0])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.NotErrorIs(t, err, ErrSyntax)
	})
}
