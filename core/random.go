package core

import "math/rand"

const (
	randomMinNodes  = 5
	randomMaxNodes  = 8
	randomMinWeight = 5
	randomMaxWeight = 24
)

var randomNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Random builds a graph of 5..8 vertices named A..H where each pair is
// connected with probability 1/2 and weight 5..24. The result may be
// disconnected. rng must not be shared across goroutines.
func Random(rng *rand.Rand) *Graph {
	n := randomMinNodes + rng.Intn(randomMaxNodes-randomMinNodes+1)
	g := NewGraph()
	for _, id := range randomNames[:n] {
		_ = g.AddVertex(id) // names are distinct and non-empty
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(2) == 0 {
				continue
			}
			w := int64(randomMinWeight + rng.Intn(randomMaxWeight-randomMinWeight+1))
			_ = g.AddEdge(randomNames[i], randomNames[j], w)
		}
	}
	return g
}
