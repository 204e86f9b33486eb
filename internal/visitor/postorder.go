package visitor

import "github.com/specialistvlad/depgraph/internal/graph"

// PostorderGenerator collects the distinct dependencies of a graph with
// children ahead of their parents, which is a valid build order for acyclic
// graphs.
type PostorderGenerator struct {
	nodeList
	// firstVisit mirrors the walk stack: whether each entered node was new.
	firstVisit []bool
}

var _ graph.Visitor = (*PostorderGenerator)(nil)

// NewPostorderGenerator returns an empty generator.
func NewPostorderGenerator(opts ...Option) *PostorderGenerator {
	return &PostorderGenerator{nodeList: newNodeList(opts)}
}

// VisitEnter descends only into nodes whose key has not been seen yet.
func (g *PostorderGenerator) VisitEnter(n *graph.Node) bool {
	dep := n.Dependency()
	first := dep != nil && g.markSeen(dep)
	g.firstVisit = append(g.firstVisit, first)
	return dep == nil || first
}

// VisitLeave records the node if VisitEnter saw it for the first time.
func (g *PostorderGenerator) VisitLeave(n *graph.Node) bool {
	last := len(g.firstVisit) - 1
	first := g.firstVisit[last]
	g.firstVisit = g.firstVisit[:last]
	if first {
		g.nodes = append(g.nodes, n)
	}
	return true
}

// Reset discards the output so the generator can be reused.
func (g *PostorderGenerator) Reset() {
	g.nodeList.Reset()
	g.firstVisit = nil
}
