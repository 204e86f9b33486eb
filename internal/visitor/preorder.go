package visitor

import "github.com/specialistvlad/depgraph/internal/graph"

// PreorderGenerator collects the distinct dependencies of a graph in
// preorder, i.e. in the order they are first met by a parent-first,
// left-to-right walk.
type PreorderGenerator struct {
	nodeList
}

var _ graph.Visitor = (*PreorderGenerator)(nil)

// NewPreorderGenerator returns an empty generator.
func NewPreorderGenerator(opts ...Option) *PreorderGenerator {
	return &PreorderGenerator{nodeList: newNodeList(opts)}
}

// VisitEnter records n the first time its key is seen and only then descends
// into its children. A node without a dependency is never recorded but is
// always descended into.
func (g *PreorderGenerator) VisitEnter(n *graph.Node) bool {
	dep := n.Dependency()
	if dep == nil {
		return true
	}
	if !g.markSeen(dep) {
		return false
	}
	g.nodes = append(g.nodes, n)
	return true
}

// VisitLeave implements graph.Visitor and never prunes siblings.
func (g *PreorderGenerator) VisitLeave(*graph.Node) bool { return true }
