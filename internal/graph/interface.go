package graph

// Visitor is driven by Node.Accept over a dependency graph.
//
// # Typical Implementation
//
// See internal/visitor.PreorderGenerator for the dedup-aware flattening used to
// build classpaths.
type Visitor interface {
	// VisitEnter is called when the walk reaches a node, before its children.
	//
	// Returns true to descend into the node's children, false to skip them.
	VisitEnter(n *Node) bool

	// VisitLeave is called after the node's children were visited (or
	// skipped).
	//
	// Returns true to continue with the node's next sibling, false to skip
	// all of its remaining siblings.
	VisitLeave(n *Node) bool
}

// VisitorFuncs adapts plain functions to the Visitor interface. A nil field
// behaves as a function returning true.
type VisitorFuncs struct {
	Enter func(n *Node) bool
	Leave func(n *Node) bool
}

// VisitEnter implements Visitor.
func (f VisitorFuncs) VisitEnter(n *Node) bool {
	if f.Enter == nil {
		return true
	}
	return f.Enter(n)
}

// VisitLeave implements Visitor.
func (f VisitorFuncs) VisitLeave(n *Node) bool {
	if f.Leave == nil {
		return true
	}
	return f.Leave(n)
}
