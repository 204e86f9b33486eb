package graph

import (
	"context"
	"maps"
	"slices"

	"github.com/specialistvlad/depgraph/internal/artifact"
	"github.com/specialistvlad/depgraph/internal/ctxlog"
)

// Node is a vertex of the dependency graph. The root of a resolution usually
// carries no dependency.
type Node struct {
	dependency *Dependency
	children   []*Node
	data       map[string]any
}

// NewNode creates a node for dep; dep may be nil for a synthetic root.
func NewNode(dep *Dependency, children ...*Node) *Node {
	return &Node{dependency: dep, children: children}
}

// Dependency returns the node's dependency, nil for a synthetic root.
func (n *Node) Dependency() *Dependency { return n.dependency }

// Artifact returns the dependency's artifact, nil if the node has none.
func (n *Node) Artifact() artifact.Artifact {
	if n.dependency == nil {
		return nil
	}
	return n.dependency.Artifact()
}

// Data returns a copy of the free-form data attached to the node, never nil.
func (n *Node) Data() map[string]any {
	if n.data == nil {
		return map[string]any{}
	}
	return maps.Clone(n.data)
}

// SetData attaches value under key; a nil value removes the key. Like
// SetChildren it must not be called while the graph is being walked.
func (n *Node) SetData(key string, value any) {
	if value == nil {
		delete(n.data, key)
		return
	}
	if n.data == nil {
		n.data = make(map[string]any)
	}
	n.data[key] = value
}

// Children returns a copy of the node's children in order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// SetChildren replaces the node's children. Only builders may call it, never
// while the graph is being walked.
func (n *Node) SetChildren(children []*Node) { n.children = slices.Clone(children) }

// AddChild appends a child. The same rule as SetChildren applies.
func (n *Node) AddChild(child *Node) { n.children = append(n.children, child) }

func (n *Node) String() string {
	if n.dependency == nil {
		return "(null)"
	}
	return n.dependency.String()
}

// frame is one level of the explicit walk stack.
type frame struct {
	node    *Node
	next    int  // index of the next child to enter
	descend bool // VisitEnter's answer, cleared when a child stops its siblings
}

// Accept walks the subtree rooted at n, parent before children and children
// left to right, calling v as described in the package documentation.
func (n *Node) Accept(ctx context.Context, v Visitor) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Dependency graph walk started.", "root", n.String())

	if err := ctx.Err(); err != nil {
		return err
	}

	entered := 1
	stack := []frame{{node: n, descend: v.VisitEnter(n)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.descend && top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			if err := ctx.Err(); err != nil {
				logger.Debug("Dependency graph walk aborted.", "entered", entered, "error", err)
				return err
			}
			entered++
			stack = append(stack, frame{node: child, descend: v.VisitEnter(child)})
			continue
		}

		keepGoing := v.VisitLeave(top.node)
		stack = stack[:len(stack)-1]
		if !keepGoing && len(stack) > 0 {
			stack[len(stack)-1].descend = false
		}
	}

	logger.Debug("Dependency graph walk finished.", "entered", entered)
	return nil
}
