// Package visitor contains graph.Visitor implementations that flatten or
// render a dependency graph.
//
// PreorderGenerator is the one used to build classpaths: it lists every
// distinct dependency once, in the order a depth-first, parent-first walk
// first meets it, and never descends into a node it has already listed. That
// single rule makes it terminate on cyclic graphs. PostorderGenerator lists
// children before their parents for build ordering, and TreeDumper prints the
// graph for diagnostics.
//
// Generators are not safe for concurrent use. Walk one graph from several
// goroutines with one generator each.
package visitor
