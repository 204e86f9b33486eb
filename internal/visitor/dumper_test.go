package visitor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeDumper(t *testing.T) {
	tests := []struct {
		fixture string
		want    string
	}{
		{
			fixture: "diamond.txt",
			want: `g:a:jar:1 (compile)
+- g:b:jar:1 (compile)
|  \- g:d:jar:1 (compile)
\- g:c:jar:1 (compile)
   \- g:d:jar:1 (compile) (omitted for duplicate)
`,
		},
		{
			fixture: "cycles.txt",
			want: `g:a:jar:1 (compile)
\- g:b:jar:1 (compile)
   \- g:c:jar:1 (compile)
      \- g:d:jar:1 (compile)
         \- g:e:jar:1 (compile)
            \- g:b:jar:1 (compile) (cycle)
`,
		},
		{
			fixture: "scopes.txt",
			want: `(null)
+- g:a:jar:1 (compile)
|  \- g:x:jar:1 (compile)
\- g:b:jar:1 (compile)
   \- g:x:jar:1 (test)
      \- g:y:jar:1 (test)
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.fixture, func(t *testing.T) {
			var buf bytes.Buffer
			d := NewTreeDumper(&buf)

			require.NoError(t, loadFixture(t, tc.fixture).Accept(context.Background(), d))
			require.NoError(t, d.Err())

			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("dump mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestTreeDumper_WriteError(t *testing.T) {
	w := &failingWriter{}
	d := NewTreeDumper(w)

	require.NoError(t, loadFixture(t, "simple.txt").Accept(context.Background(), d))
	assert.EqualError(t, d.Err(), "disk full")
	assert.Equal(t, 1, w.calls)
}
