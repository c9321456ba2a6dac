package mst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstperturb/builder"
	"github.com/katalvlaran/mstperturb/core"
)

// classicEdges is the 9-vertex reference graph (total MST weight 37).
var classicEdges = [][3]int{
	{0, 1, 4}, {0, 7, 8}, {1, 2, 8}, {1, 7, 11}, {2, 3, 7}, {2, 8, 2}, {2, 5, 4},
	{3, 4, 9}, {3, 5, 14}, {4, 5, 10}, {5, 6, 2}, {6, 7, 1}, {6, 8, 6}, {7, 8, 7},
}

// buildGraph constructs a graph with n vertices from (src, dest, weight) triples.
func buildGraph(t testing.TB, n int, triples [][3]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, tr := range triples {
		require.NoError(t, g.AddEdge(tr[0], tr[1], int64(tr[2])))
	}

	return g
}

// buildConnectedGraph chains 0—1—…—(n-1) to guarantee connectivity, then
// adds extra random edges. Weights are in [1, 100].
func buildConnectedGraph(t testing.TB, r *rand.Rand, n, extra int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n,
		[]builder.BuilderOption{builder.WithRand(r), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.Path(), builder.RandomEdges(extra))
	require.NoError(t, err)

	return g
}

// buildScatteredGraph places n connected vertices at random ids of a graph
// sized size, leaving the other ids untouched. It returns the graph and the
// used ids ascending.
func buildScatteredGraph(t testing.TB, r *rand.Rand, size, n, extra int) (*core.Graph, []int) {
	t.Helper()
	g, err := core.NewGraph(size)
	require.NoError(t, err)

	ids := r.Perm(size)[:n]
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], 1+r.Int63n(100)))
	}
	for i := 0; i < extra; i++ {
		u, v := ids[r.Intn(n)], ids[r.Intn(n)]
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, 1+r.Int63n(100)))
	}

	used := append([]int(nil), ids...)
	sort.Ints(used)

	return g, used
}

func span(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
