// Package graphtext parses a compact textual description of a dependency
// graph. It exists to build fixtures for tests:
//
//	# comments and blank lines are ignored
//	gid:a:jar:1.0:compile
//	+- gid:b:jar:1.0:compile ^b
//	|  \- gid:c:jar:1.0 storage=/repo/c.jar lang=java
//	\- ^b
//
// Each level of nesting is three characters wide ("+- ", `\- `, "|  " or
// "   "). A node is either "(null)", a reference "^id" to a node anchored
// earlier, or coordinates group:artifact:extension:version[:scope[:optional]]
// followed by an optional "^id" anchor and key=value properties. The
// property key "storage" sets the artifact's storage location instead.
//
// A reference reuses the anchored *graph.Node itself, so a reference below
// its own anchor produces a true cycle.
package graphtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/depgraph/internal/artifact"
	"github.com/specialistvlad/depgraph/internal/graph"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("graph description syntax error")

// ParseError reports the offending line of a graph description.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: line %d: %s", ErrSyntax.Error(), e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

// storageKey is the property key mapped onto the artifact's storage.
const storageKey = "storage"

var indentUnits = []string{"+- ", `\- `, "|  ", "   "}

// ParseFile parses the graph description stored at path.
func ParseFile(path string) (*graph.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph description %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses a graph description held in a string.
func ParseString(s string) (*graph.Node, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a graph description and returns its root node.
func Parse(r io.Reader) (*graph.Node, error) {
	p := &parser{anchors: make(map[string]*graph.Node)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading graph description: %w", err)
	}
	if p.root == nil {
		return nil, &ParseError{Line: p.line, Msg: "no root node"}
	}
	return p.root, nil
}

type parser struct {
	line    int
	root    *graph.Node
	anchors map[string]*graph.Node
	// stack holds the most recent node of each nesting level; a nil entry
	// marks a reference, which cannot take children.
	stack []*graph.Node
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseLine(raw string) error {
	text := strings.TrimRight(raw, " \t")
	if strings.TrimSpace(text) == "" || strings.HasPrefix(strings.TrimSpace(text), "#") {
		return nil
	}

	level := 0
	for {
		unit, ok := leadingUnit(text)
		if !ok {
			break
		}
		text = text[len(unit):]
		level++
	}
	text = strings.TrimSpace(text)

	if level == 0 && p.root != nil {
		return p.errorf("multiple root nodes")
	}
	if level > len(p.stack) {
		return p.errorf("line is indented %d levels below its parent", level-len(p.stack))
	}

	n, isRef, err := p.parseNode(text)
	if err != nil {
		return err
	}

	if level == 0 {
		if isRef {
			return p.errorf("root cannot be a reference")
		}
		p.root = n
		p.stack = []*graph.Node{n}
		return nil
	}

	parent := p.stack[level-1]
	if parent == nil {
		return p.errorf("a reference cannot have children")
	}
	parent.AddChild(n)

	p.stack = p.stack[:level]
	if isRef {
		p.stack = append(p.stack, nil)
	} else {
		p.stack = append(p.stack, n)
	}
	return nil
}

func leadingUnit(text string) (string, bool) {
	for _, u := range indentUnits {
		if strings.HasPrefix(text, u) {
			return u, true
		}
	}
	return "", false
}

// parseNode returns the node described by text and whether it is a
// reference to an anchored node.
func (p *parser) parseNode(text string) (*graph.Node, bool, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, false, p.errorf("empty node")
	}

	if id, ok := strings.CutPrefix(fields[0], "^"); ok {
		if len(fields) > 1 {
			return nil, false, p.errorf("unexpected text after reference ^%s", id)
		}
		n, found := p.anchors[id]
		if !found {
			return nil, false, p.errorf("unknown reference ^%s", id)
		}
		return n, true, nil
	}

	if fields[0] == "(null)" {
		if len(fields) > 1 {
			return nil, false, p.errorf("unexpected text after (null)")
		}
		return graph.NewNode(nil), false, nil
	}

	dep, anchor, err := p.parseDependency(fields)
	if err != nil {
		return nil, false, err
	}
	n := graph.NewNode(dep)
	if anchor != "" {
		if _, dup := p.anchors[anchor]; dup {
			return nil, false, p.errorf("duplicate anchor ^%s", anchor)
		}
		p.anchors[anchor] = n
	}
	return n, false, nil
}

func (p *parser) parseDependency(fields []string) (*graph.Dependency, string, error) {
	coords := strings.Split(fields[0], ":")
	if len(coords) < 4 || len(coords) > 6 {
		return nil, "", p.errorf("bad coordinates %q, expected group:artifact:extension:version[:scope[:optional]]", fields[0])
	}
	for _, c := range coords[:4] {
		if c == "" {
			return nil, "", p.errorf("bad coordinates %q, empty segment", fields[0])
		}
	}

	var (
		anchor  string
		storage string
		props   map[string]string
	)
	for _, f := range fields[1:] {
		if id, ok := strings.CutPrefix(f, "^"); ok {
			if id == "" || anchor != "" {
				return nil, "", p.errorf("bad anchor %q", f)
			}
			anchor = id
			continue
		}
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, "", p.errorf("expected key=value, got %q", f)
		}
		if key == storageKey {
			storage = value
			continue
		}
		if props == nil {
			props = make(map[string]string)
		}
		props[key] = value
	}

	a := artifact.New(coords[0], coords[1], coords[3],
		artifact.WithExtension(coords[2]),
		artifact.WithStorage(storage),
		artifact.WithProperties(props))

	scope := ""
	if len(coords) > 4 {
		scope = coords[4]
	}
	dep, err := graph.NewDependency(a, scope)
	if err != nil {
		return nil, "", p.errorf("%v", err)
	}
	if len(coords) > 5 {
		switch coords[5] {
		case "optional", "true":
			dep = dep.SetOptional(true)
		case "false", "":
		default:
			return nil, "", p.errorf("bad optional flag %q", coords[5])
		}
	}
	return dep, anchor, nil
}
