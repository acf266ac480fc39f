// Package core defines the undirected weighted Graph that the shortest-path
// engines run on, plus the named road-map presets and a seeded random graph
// generator.
//
// Graph is deliberately small:
//
//   - undirected: AddEdge links both directions and records one edge;
//   - weights in 1..math.MaxInt64-1 (ErrBadWeight otherwise), so negative
//     cycles and zero-cost hops cannot be built and MaxInt64 stays free to
//     mean "unreachable";
//   - no self-loops and no parallel edges;
//   - deterministic: Vertices, Neighbors and Edges report insertion order,
//     which is the order Dijkstra uses to break ties.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// vertex list and the adjacency.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("B", "C", 1)
//	nbs, _ := g.Neighbors("B") // [{B A 4} {B C 1}]
package core
