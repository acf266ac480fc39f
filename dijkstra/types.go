package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors returned by ShortestPath. All are reported before the first
// step.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("%w: dijkstra: graph is nil", trace.ErrInvalidInput)

	// ErrEmptyEndpoint indicates an empty start or end vertex ID.
	ErrEmptyEndpoint = fmt.Errorf("%w: dijkstra: start and end must be non-empty", trace.ErrInvalidInput)

	// ErrVertexNotFound indicates a start or end vertex missing from the graph.
	ErrVertexNotFound = fmt.Errorf("%w: dijkstra: vertex not found in graph", trace.ErrInvalidInput)
)

// Inf marks an unreachable vertex in distance tables.
const Inf int64 = math.MaxInt64

// Step kinds.
const (
	KindInit   trace.Kind = "init"
	KindVisit  trace.Kind = "visit"
	KindRelax  trace.Kind = "relax"
	KindPath   trace.Kind = "path"
	KindNoPath trace.Kind = "no-path"
)

// State is the payload of init and visit steps: a snapshot of the search.
type State struct {
	Current   string            `json:"current,omitempty" yaml:"current,omitempty"`
	Distances map[string]int64  `json:"distances" yaml:"distances"`
	Previous  map[string]string `json:"previous" yaml:"previous"`
	Visited   []string          `json:"visited" yaml:"visited"`
}

// Relaxation is the payload of relax steps.
type Relaxation struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
	Old    int64  `json:"old" yaml:"old"`
	New    int64  `json:"new" yaml:"new"`
}

// Result is the outcome of ShortestPath. Path and Distance are meaningful only
// when Found; otherwise Distance is Inf. Visited lists vertices in visiting
// order.
type Result struct {
	Start     string           `json:"start" yaml:"start"`
	End       string           `json:"end" yaml:"end"`
	Found     bool             `json:"found" yaml:"found"`
	Path      []string         `json:"path" yaml:"path"`
	Distance  int64            `json:"distance" yaml:"distance"`
	Visited   []string         `json:"visited" yaml:"visited"`
	Distances map[string]int64 `json:"distances" yaml:"distances"`
}
