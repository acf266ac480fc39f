package core

import (
	"fmt"
	"math"
	"slices"
)

// AddVertex registers id.
//
// Errors: ErrEmptyVertexID, ErrVertexExists.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[id]; ok {
		return fmt.Errorf("%w: %q", ErrVertexExists, id)
	}
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	g.order = append(g.order, id)
	g.adj[id] = nil
}

// AddEdge connects from and to with weight in both directions. Missing
// endpoints are created, from first.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrDuplicateEdge.
// Validation happens before any mutation, so a rejected edge leaves the graph
// unchanged.
//
// Complexity: O(deg(from)) for the duplicate check.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if weight <= 0 || weight == math.MaxInt64 {
		return fmt.Errorf("%w: %s-%s has weight %d", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, from, to)
	}
	for _, id := range []string{from, to} {
		if _, ok := g.adj[id]; !ok {
			g.addVertexLocked(id)
		}
	}
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})
	g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Weight: weight})
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether from and to are connected (in either direction).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hasEdgeLocked(from, to)
}

// Weight returns the weight of edge from-to.
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adj[from] {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.order)
}

// Neighbors returns the edges incident to id in insertion order, each with
// From == id.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return slices.Clone(nbs), nil
}

// Edges returns one record per undirected edge, in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.edges)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Clone returns a deep copy; later changes to either graph do not affect the
// other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		order: slices.Clone(g.order),
		adj:   make(map[string][]Edge, len(g.adj)),
		edges: slices.Clone(g.edges),
	}
	for id, nbs := range g.adj {
		c.adj[id] = slices.Clone(nbs)
	}

	return c
}
