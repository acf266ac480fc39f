// Package dijkstra traces the textbook O(V^2) Dijkstra shortest-path search on
// a core.Graph.
//
// There is no priority queue: every round scans all unvisited vertices for
// the smallest tentative distance. That keeps each round small enough to
// narrate (visit one vertex, relax its edges) and is what the road-map
// presets were designed around.
//
// Tie-break: when several unvisited vertices share the minimum distance, the
// one added to the graph first wins (strict < over core.Graph.Vertices order).
// Only distances are canonical; the visiting order among ties is a property of
// graph construction.
//
// The search stops as soon as the end vertex is visited; its distance is final
// at that point because all weights are positive. Unreachable vertices keep
// the distance Inf.
//
// Complexity:
//
//   - Time:  O(V^2 + E)
//   - Space: O(V) plus the recorded trace; every visit step snapshots the
//     distance table, so a full trace holds O(V^2) entries.
package dijkstra
