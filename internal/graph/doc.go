// Package graph provides the dependency graph that the traversal visitors
// walk: nodes wrapping a Dependency, ordered children, and a visitor protocol.
//
// # Why Graph Package Exists
//
// Resolution produces a tree of dependencies in which the same coordinates may
// be reachable through several paths, and a node may even appear among its own
// descendants. The graph package owns that structure and the walking logic, so
// consumers (classpath builders, dumpers, build-order generators) only decide
// what to do at each node.
//
// This separation provides several benefits:
//   - **One walk:** Every consumer shares the same parent-before-children,
//     left-to-right order.
//   - **Bounded stack:** The walk keeps its own explicit stack, so graphs that
//     are hundreds of levels deep cannot exhaust the goroutine stack.
//   - **Pluggable policy:** Pruning, dedup and early exit live in the visitor.
//
// # The Visitor Protocol
//
// For every node the walk calls:
//
//	descend := v.VisitEnter(node)   // false skips the node's children
//	...children, left to right, if descend...
//	next := v.VisitLeave(node)      // false skips the node's remaining siblings
//
// A visitor that never returns false from VisitEnter on a cyclic graph will
// not terminate; cycle handling is the visitor's job.
//
// # Lifecycle
//
//  1. **Built** once per resolution run by an external builder (manifest
//     loader, fixture parser).
//  2. **Read-only** while walked. Any number of goroutines may walk the same
//     graph concurrently, each with its own visitor.
//
// # Cancellation
//
// Accept checks the context before entering each node and returns ctx.Err()
// once it is done. Whatever the visitor accumulated up to that point is kept.
package graph
