package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates AddVertex on an identifier already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same two vertices.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrBadWeight indicates a weight outside 1..math.MaxInt64-1. MaxInt64 is
	// reserved as the "unreachable" distance.
	ErrBadWeight = errors.New("core: edge weight must be in 1..MaxInt64-1")

	// ErrUnknownPreset indicates a preset name not listed by PresetNames.
	ErrUnknownPreset = errors.New("core: unknown preset")
)

// Edge is one undirected connection. In Neighbors results From is the queried
// vertex; in Edges results From/To follow the order given to AddEdge.
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Graph is an undirected weighted graph with insertion-ordered vertices and
// adjacency lists.
type Graph struct {
	mu sync.RWMutex

	order []string          // vertex IDs in insertion order
	adj   map[string][]Edge // vertex ID → incident edges, insertion order
	edges []Edge            // one record per undirected edge, insertion order
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]Edge)}
}
