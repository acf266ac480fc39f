package dijkstra

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/trace"
)

// ShortestPath finds the cheapest route from start to end.
//
// Steps: init with the distance table; per round a visit step for the chosen
// vertex followed by one relax step per strict improvement to an unvisited
// neighbour; then the terminal path or no-path step. An unreachable end is a
// no-path outcome, not an error. Routes whose length would reach Inf are
// treated as unreachable.
//
// Errors (before any step): ErrNilGraph, ErrEmptyEndpoint, ErrVertexNotFound.
func ShortestPath(g *core.Graph, start, end string, opts ...trace.Option) (*Result, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if start == "" || end == "" {
		return nil, nil, ErrEmptyEndpoint
	}
	for _, id := range []string{start, end} {
		if !g.HasVertex(id) {
			return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	s := newSearch(g, start)
	if err = em.Emit(KindInit, s.snapshot(""), "start at %s: distance 0, all others unknown", start); err != nil {
		return nil, em.Trace(), err
	}

	for {
		u, ok := s.closest()
		if !ok {
			break
		}
		s.visited[u] = true
		s.order = append(s.order, u)
		if err = em.Emit(KindVisit, s.snapshot(u), "visit %s at distance %d", u, s.dist[u]); err != nil {
			return nil, em.Trace(), err
		}
		if u == end {
			break
		}

		nbs, _ := g.Neighbors(u)
		for _, e := range nbs {
			if s.visited[e.To] {
				continue
			}
			// A route at or beyond Inf is unreachable; the sum would also overflow.
			if e.Weight >= Inf-s.dist[u] {
				continue
			}
			nd := s.dist[u] + e.Weight
			if nd >= s.dist[e.To] {
				continue
			}
			r := Relaxation{From: u, To: e.To, Weight: e.Weight, Old: s.dist[e.To], New: nd}
			s.dist[e.To], s.prev[e.To] = nd, u
			if err = em.Emit(KindRelax, r, "relax %s-%s: %s -> %d", u, e.To, fmtDist(r.Old), nd); err != nil {
				return nil, em.Trace(), err
			}
		}
	}

	res := &Result{
		Start:     start,
		End:       end,
		Distance:  Inf,
		Visited:   slices.Clone(s.order),
		Distances: maps.Clone(s.dist),
	}
	if path, ok := s.path(end); ok {
		res.Found, res.Path, res.Distance = true, path, s.dist[end]
		if err = em.Emit(KindPath, *res, "shortest path %s with distance %d", strings.Join(path, " -> "), res.Distance); err != nil {
			return nil, em.Trace(), err
		}
		return res, em.Trace(), nil
	}

	if err = em.Emit(KindNoPath, *res, "no path from %s to %s", start, end); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

// search holds the mutable Dijkstra state for one run.
type search struct {
	start    string
	vertices []string // insertion order, the tie-break order
	dist     map[string]int64
	prev     map[string]string
	visited  map[string]bool
	order    []string
}

func newSearch(g *core.Graph, start string) *search {
	vs := g.Vertices()
	s := &search{
		start:    start,
		vertices: vs,
		dist:     make(map[string]int64, len(vs)),
		prev:     make(map[string]string, len(vs)),
		visited:  make(map[string]bool, len(vs)),
	}
	for _, v := range vs {
		s.dist[v] = Inf
	}
	s.dist[start] = 0
	return s
}

// closest returns the unvisited vertex with the smallest finite distance.
func (s *search) closest() (string, bool) {
	best, bestDist := "", Inf
	for _, v := range s.vertices {
		if !s.visited[v] && s.dist[v] < bestDist {
			best, bestDist = v, s.dist[v]
		}
	}
	return best, best != ""
}

// path walks previous pointers back from end. It fails when the chain does
// not reach start.
func (s *search) path(end string) ([]string, bool) {
	if s.dist[end] == Inf {
		return nil, false
	}
	path := []string{end}
	for cur := end; cur != s.start; {
		p, ok := s.prev[cur]
		if !ok || len(path) > len(s.vertices) {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path, true
}

func (s *search) snapshot(current string) State {
	return State{
		Current:   current,
		Distances: maps.Clone(s.dist),
		Previous:  maps.Clone(s.prev),
		Visited:   append([]string{}, s.order...),
	}
}

func fmtDist(d int64) string {
	if d == Inf {
		return "inf"
	}
	return fmt.Sprint(d)
}
