package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstperturb/builder"
	"github.com/katalvlaran/mstperturb/core"
	"github.com/katalvlaran/mstperturb/dsu"
)

func connected(g *core.Graph) bool {
	d := dsu.New(g.VertexCount())
	for _, e := range g.Edges() {
		d.Union(e.From, e.To)
	}
	return d.Sets() <= 1
}

func TestTopologies_EdgeCounts(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		cons  builder.Constructor
		edges int
	}{
		{"path", 5, builder.Path(), 4},
		{"cycle", 5, builder.Cycle(), 5},
		{"star", 6, builder.Star(), 5},
		{"complete", 5, builder.Complete(), 10},
		{"grid 3x4", 12, builder.Grid(4), 3*3 + 2*4},
		{"grid single row", 4, builder.Grid(4), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.True(t, connected(g))
		})
	}
}

func TestPath_StableOrderAndDefaultWeight(t *testing.T) {
	g, err := builder.BuildGraph(3, nil, builder.Path())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}}, g.Edges())
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(2, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(10, nil, builder.Grid(3))
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = builder.BuildGraph(4, nil, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(4, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(4, nil, builder.RandomEdges(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(4, nil, builder.RandomEdges(-1))
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = builder.BuildGraph(4, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(-1, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())

	g, err = builder.BuildGraph(6, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestRandom_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(17),
			builder.WithWeightFn(builder.UniformWeightFn(1, 50)),
		}
	}
	a, err := builder.BuildGraph(30, opts(), builder.Path(), builder.RandomEdges(60), builder.RandomSparse(0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph(30, opts(), builder.Path(), builder.RandomEdges(60), builder.RandomSparse(0.1))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.True(t, connected(a))
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(50))
		assert.NotEqual(t, e.From, e.To)
	}
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(4), builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
