package visitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/depgraph/internal/graph"
)

// TreeDumper writes a graph as an indented tree:
//
//	(null)
//	+- g:a:jar:1.0 (compile)
//	|  \- g:b:jar:1.0 (compile)
//	\- g:a:jar:1.0 (compile) (omitted for duplicate)
//
// A node whose coordinates are already on the current path is marked
// "(cycle)"; one printed earlier elsewhere is marked "(omitted for
// duplicate)". Neither is expanded again.
type TreeDumper struct {
	w       io.Writer
	printed map[graph.Key]struct{}
	path    []dumpFrame
	err     error
}

type dumpFrame struct {
	key      graph.Key
	hasKey   bool
	children int
	next     int
	last     bool
}

var _ graph.Visitor = (*TreeDumper)(nil)

// NewTreeDumper returns a dumper writing to w.
func NewTreeDumper(w io.Writer) *TreeDumper {
	return &TreeDumper{w: w, printed: make(map[graph.Key]struct{})}
}

// Err returns the first write error, if any.
func (d *TreeDumper) Err() error { return d.err }

func (d *TreeDumper) VisitEnter(n *graph.Node) bool {
	last := true
	if len(d.path) > 0 {
		parent := &d.path[len(d.path)-1]
		last = parent.next == parent.children-1
		parent.next++
	}

	line := n.String()
	descend := true
	frame := dumpFrame{children: len(n.Children()), last: last}
	if dep := n.Dependency(); dep != nil {
		frame.key, frame.hasKey = dep.Key(), true
		switch {
		case d.onPath(frame.key):
			line += " (cycle)"
			descend = false
		case d.wasPrinted(frame.key):
			line += " (omitted for duplicate)"
			descend = false
		default:
			d.printed[frame.key] = struct{}{}
		}
	}

	d.writeLine(line, last)
	d.path = append(d.path, frame)
	return descend
}

func (d *TreeDumper) VisitLeave(*graph.Node) bool {
	d.path = d.path[:len(d.path)-1]
	return true
}

func (d *TreeDumper) onPath(k graph.Key) bool {
	for _, f := range d.path {
		if f.hasKey && f.key == k {
			return true
		}
	}
	return false
}

func (d *TreeDumper) wasPrinted(k graph.Key) bool {
	_, ok := d.printed[k]
	return ok
}

func (d *TreeDumper) writeLine(text string, last bool) {
	if d.err != nil {
		return
	}
	var sb strings.Builder
	if depth := len(d.path); depth > 0 {
		// The root gets no prefix, so its frame is skipped.
		for _, f := range d.path[1:] {
			if f.last {
				sb.WriteString("   ")
			} else {
				sb.WriteString("|  ")
			}
		}
		if last {
			sb.WriteString(`\- `)
		} else {
			sb.WriteString("+- ")
		}
	}
	sb.WriteString(text)
	_, d.err = fmt.Fprintln(d.w, sb.String())
}
