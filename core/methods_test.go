package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mstperturb/core"
)

// GraphSuite exercises AddEdge and the read-only getters on a 4-vertex graph.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	g, err := core.NewGraph(4)
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestAddEdge_OutOfRange() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddEdge(-1, 2, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(s.g.AddEdge(0, 4, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(s.g.AddEdge(7, 9, 1), core.ErrVertexOutOfRange)
	// A failed insert leaves no trace.
	require.Zero(s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdge_DuplicateIsNoop() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1, 3))
	require.NoError(s.g.AddEdge(1, 0, 3))
	require.Equal(1, s.g.EdgeCount(), "reversed duplicate must collapse")

	// Same endpoints, different weight is a distinct parallel edge.
	require.NoError(s.g.AddEdge(1, 0, 4))
	require.Equal(2, s.g.EdgeCount())
	require.True(s.g.HasEdge(0, 1, 4))
	require.False(s.g.HasEdge(0, 1, 5))
}

func (s *GraphSuite) TestEdges_InsertionOrderAndCopy() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(3, 2, 9))
	require.NoError(s.g.AddEdge(0, 1, 1))

	got := s.g.Edges()
	want := []core.Edge{{From: 2, To: 3, Weight: 9}, {From: 0, To: 1, Weight: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Fatalf("Edges() mismatch (-want +got):\n%s", diff)
	}

	// Mutating the returned slice must not leak into the graph.
	got[0] = core.Edge{}
	require.Equal(want, s.g.Edges())
}

func (s *GraphSuite) TestVertices() {
	require := require.New(s.T())

	require.Empty(s.g.Vertices(), "no edges, no vertices")

	// Id 0 is valid but untouched by any edge.
	require.NoError(s.g.AddEdge(3, 1, 2))
	require.NoError(s.g.AddEdge(2, 2, 5))
	require.Equal([]int{1, 2, 3}, s.g.Vertices())
	require.Equal(4, s.g.VertexCount())
	require.True(s.g.HasVertex(0))
	require.True(s.g.HasVertex(3))
	require.False(s.g.HasVertex(4))
	require.False(s.g.HasVertex(-1))
}

func (s *GraphSuite) TestSelfLoopAccepted() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(2, 2, 1))
	require.Equal([]core.Edge{{From: 2, To: 2, Weight: 1}}, s.g.Edges())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	require.Empty(t, g.Vertices())
	require.Empty(t, g.Edges())
	require.ErrorIs(t, g.AddEdge(0, 0, 0), core.ErrVertexOutOfRange)
}
