package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex("A"), core.ErrVertexExists)
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices(), "endpoints auto-created, from first")
	assert.Equal(t, 1, g.EdgeCount())

	w, ok := g.Weight("B", "A")
	assert.True(t, ok)
	assert.EqualValues(t, 4, w)

	nbs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "B", To: "A", Weight: 4}}, nbs)
}

func TestAddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	cases := []struct {
		name     string
		from, to string
		w        int64
		want     error
	}{
		{"empty from", "", "B", 1, core.ErrEmptyVertexID},
		{"empty to", "A", "", 1, core.ErrEmptyVertexID},
		{"loop", "A", "A", 1, core.ErrLoopNotAllowed},
		{"zero weight", "A", "C", 0, core.ErrBadWeight},
		{"negative weight", "A", "C", -3, core.ErrBadWeight},
		{"infinite weight", "A", "C", math.MaxInt64, core.ErrBadWeight},
		{"duplicate", "A", "B", 2, core.ErrDuplicateEdge},
		{"reverse duplicate", "B", "A", 2, core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.from, tc.to, tc.w), tc.want)
		})
	}

	assert.Equal(t, 2, g.VertexCount(), "rejected edges create no vertices")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestQueries_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Z"))
	require.NoError(t, g.AddEdge("M", "A", 3))
	require.NoError(t, g.AddEdge("Z", "A", 1))
	require.NoError(t, g.AddEdge("A", "Q", 2))

	assert.Equal(t, []string{"Z", "M", "A", "Q"}, g.Vertices())

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	var to []string
	for _, e := range nbs {
		assert.Equal(t, "A", e.From)
		to = append(to, e.To)
	}
	assert.Equal(t, []string{"M", "Z", "Q"}, to)

	assert.Equal(t, []core.Edge{
		{From: "M", To: "A", Weight: 3},
		{From: "Z", To: "A", Weight: 1},
		{From: "A", To: "Q", Weight: 2},
	}, g.Edges())

	_, err = g.Neighbors("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, ok := g.Weight("M", "Q")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	g, err := core.Preset("simple")
	require.NoError(t, err)
	c := g.Clone()

	require.NoError(t, c.AddEdge("A", "E", 1))
	assert.False(t, g.HasEdge("A", "E"))
	assert.Equal(t, g.EdgeCount()+1, c.EdgeCount())
	assert.Equal(t, g.Vertices(), c.Vertices())

	nbs, _ := c.Neighbors("A")
	orig, _ := g.Neighbors("A")
	assert.Len(t, nbs, len(orig)+1)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"complex", "highway", "metro", "simple"}, core.PresetNames())

	sizes := map[string][2]int{
		"simple":  {5, 7},
		"complex": {8, 12},
		"highway": {10, 10},
		"metro":   {6, 10},
	}
	for name, want := range sizes {
		g, err := core.Preset(name)
		require.NoError(t, err, name)
		assert.Equal(t, want[0], g.VertexCount(), name)
		assert.Equal(t, want[1], g.EdgeCount(), name)
	}

	g, _ := core.Preset("highway")
	assert.Equal(t, "NYC", g.Vertices()[0])
	w, ok := g.Weight("CLE", "CHI")
	assert.True(t, ok)
	assert.EqualValues(t, 345, w)

	_, err := core.Preset("moon")
	assert.ErrorIs(t, err, core.ErrUnknownPreset)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		g := core.Random(rng)
		n := g.VertexCount()
		require.GreaterOrEqual(t, n, 5)
		require.LessOrEqual(t, n, 8)
		assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}[:n], g.Vertices())
		assert.LessOrEqual(t, g.EdgeCount(), n*(n-1)/2)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(5))
			assert.LessOrEqual(t, e.Weight, int64(24))
		}
	}

	a := core.Random(rand.New(rand.NewSource(7)))
	b := core.Random(rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same graph")
}
