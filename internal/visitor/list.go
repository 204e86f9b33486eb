package visitor

import (
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/depgraph/internal/artifact"
	"github.com/specialistvlad/depgraph/internal/graph"
)

// KeyMode selects what counts as a repeat encounter.
type KeyMode int

const (
	// KeyByDependency treats the same artifact under different scopes as
	// distinct entries.
	KeyByDependency KeyMode = iota
	// KeyByArtifact keys on artifact coordinates only.
	KeyByArtifact
)

func (m KeyMode) String() string {
	switch m {
	case KeyByDependency:
		return "dependency"
	case KeyByArtifact:
		return "artifact"
	default:
		return fmt.Sprintf("KeyMode(%d)", int(m))
	}
}

// ParseKeyMode converts "dependency" or "artifact" into a KeyMode.
func ParseKeyMode(s string) (KeyMode, error) {
	switch strings.ToLower(s) {
	case "dependency", "":
		return KeyByDependency, nil
	case "artifact":
		return KeyByArtifact, nil
	default:
		return 0, fmt.Errorf("invalid key mode %q: must be 'dependency' or 'artifact'", s)
	}
}

// Option configures a generator.
type Option func(*nodeList)

// WithKeyMode sets the dedup key. The default is KeyByDependency.
func WithKeyMode(mode KeyMode) Option {
	return func(l *nodeList) { l.mode = mode }
}

// nodeList is the ordered, deduplicated output shared by the generators.
type nodeList struct {
	mode  KeyMode
	seen  map[graph.Key]struct{}
	nodes []*graph.Node
}

func newNodeList(opts []Option) nodeList {
	l := nodeList{
		seen:  make(map[graph.Key]struct{}),
		nodes: []*graph.Node{},
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func (l *nodeList) key(dep *graph.Dependency) graph.Key {
	if l.mode == KeyByArtifact {
		return graph.Key{Artifact: artifact.KeyOf(dep.Artifact())}
	}
	return dep.Key()
}

// markSeen records dep and reports whether it was new.
func (l *nodeList) markSeen(dep *graph.Dependency) bool {
	k := l.key(dep)
	if _, dup := l.seen[k]; dup {
		return false
	}
	l.seen[k] = struct{}{}
	return true
}

// Reset discards the output and the seen set so the generator can be reused.
func (l *nodeList) Reset() {
	clear(l.seen)
	l.nodes = []*graph.Node{}
}

// Nodes returns the recorded nodes in order. It is empty before any walk.
func (l *nodeList) Nodes() []*graph.Node {
	out := make([]*graph.Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Dependencies returns the dependencies of the recorded nodes. Unresolved
// dependencies (artifact without storage) are left out unless
// includeUnresolved is set.
func (l *nodeList) Dependencies(includeUnresolved bool) []*graph.Dependency {
	deps := make([]*graph.Dependency, 0, len(l.nodes))
	for _, n := range l.nodes {
		dep := n.Dependency()
		if !includeUnresolved && dep.Artifact().Storage() == "" {
			continue
		}
		deps = append(deps, dep)
	}
	return deps
}

// Artifacts is like Dependencies but returns the artifacts.
func (l *nodeList) Artifacts(includeUnresolved bool) []artifact.Artifact {
	deps := l.Dependencies(includeUnresolved)
	arts := make([]artifact.Artifact, len(deps))
	for i, dep := range deps {
		arts[i] = dep.Artifact()
	}
	return arts
}

// Storages returns the storage locations of the resolved artifacts.
func (l *nodeList) Storages() []string {
	var paths []string
	for _, a := range l.Artifacts(false) {
		paths = append(paths, a.Storage())
	}
	return paths
}

// ClassPath joins Storages with the platform's path-list separator.
func (l *nodeList) ClassPath() string {
	return strings.Join(l.Storages(), string(os.PathListSeparator))
}
