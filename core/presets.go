package core

import (
	"fmt"
	"slices"
)

type presetData struct {
	nodes []string
	edges []Edge
}

// presets are the road maps shipped with the visualizer. Node lists fix the
// insertion order, which matters for Dijkstra tie-breaking.
var presets = map[string]presetData{
	"simple": {
		nodes: []string{"A", "B", "C", "D", "E"},
		edges: []Edge{
			{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
			{"C", "D", 8}, {"C", "E", 10}, {"D", "E", 2},
		},
	},
	"complex": {
		nodes: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		edges: []Edge{
			{"A", "B", 7}, {"A", "C", 9}, {"A", "F", 14}, {"B", "C", 10},
			{"B", "D", 15}, {"C", "D", 11}, {"C", "F", 2}, {"D", "E", 6},
			{"E", "F", 9}, {"F", "G", 12}, {"G", "H", 4}, {"E", "H", 8},
		},
	},
	"highway": {
		nodes: []string{"NYC", "BOS", "PHL", "DC", "ATL", "MIA", "CHI", "DET", "CLE", "PIT"},
		edges: []Edge{
			{"NYC", "BOS", 215}, {"NYC", "PHL", 95}, {"PHL", "DC", 140}, {"DC", "ATL", 640},
			{"ATL", "MIA", 660}, {"NYC", "PIT", 370}, {"PIT", "CLE", 135}, {"CLE", "DET", 170},
			{"DET", "CHI", 280}, {"CHI", "CLE", 345},
		},
	},
	"metro": {
		nodes: []string{"A", "B", "C", "D", "E", "F"},
		edges: []Edge{
			{"A", "B", 2}, {"A", "C", 3}, {"B", "C", 1}, {"B", "D", 4}, {"B", "E", 5},
			{"C", "D", 2}, {"C", "E", 3}, {"D", "E", 1}, {"D", "F", 6}, {"E", "F", 2},
		},
	},
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset builds a fresh graph for the named preset.
//
// Errors: ErrUnknownPreset.
func Preset(name string) (*Graph, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}

	g := NewGraph()
	for _, id := range p.nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range p.edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
