// SPDX-License-Identifier: MIT
// File: tree.go
// Role: Tree state, construction and read-only accessors.
// Determinism:
//   - edges are kept sorted by core.Compare; Edges() returns that order.
//   - Vertices() returns ids ascending.
// Ownership:
//   - Every getter returns a fresh copy; no alias into live state escapes.

package mst

import (
	"sort"

	"github.com/katalvlaran/mstperturb/core"
	"github.com/katalvlaran/mstperturb/prim_kruskal"
)

// Tree is a spanning forest over a subset of a Graph's vertices.
//
// Invariants:
//   - edges is acyclic, sorted by core.Compare and free of duplicates.
//   - both endpoints of every edge are members.
//
// The Graph is shared and never mutated. Only RemoveEdgeInMiddleRange
// mutates a Tree; split and union always return new trees.
type Tree struct {
	graph   *core.Graph
	edges   []core.Edge
	member  []bool // indexed by vertex id, len == graph.VertexCount()
	size    int    // number of members
	cfg     config
	removed *core.Edge // last edge taken out by RemoveEdgeInMiddleRange
}

// New builds the minimum spanning forest of g and returns it as a Tree that
// spans every vertex of g, that is every endpoint of a graph edge.
//
// Errors:
//   - prim_kruskal.ErrInvalidGraph  if g is nil.
//   - prim_kruskal.ErrUnknownMethod if WithMethod named no algorithm.
//
// Complexity: that of the selected algorithm plus O(V + E).
func New(g *core.Graph, opts ...Option) (*Tree, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	build, err := prim_kruskal.Lookup(cfg.method)
	if err != nil {
		return nil, err
	}
	edges, _, err := build(g)
	if err != nil {
		return nil, err
	}

	t := newEmpty(g, cfg)
	for _, v := range g.Vertices() {
		t.member[v] = true
		t.size++
	}
	t.edges = sortedUnique(edges)

	return t, nil
}

// newEmpty allocates a Tree with no members and no edges.
func newEmpty(g *core.Graph, cfg config) *Tree {
	return &Tree{
		graph:  g,
		member: make([]bool, g.VertexCount()),
		cfg:    cfg,
	}
}

// sortedUnique returns a sorted, de-duplicated copy of edges.
func sortedUnique(edges []core.Edge) []core.Edge {
	out := make([]core.Edge, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	uniq := out[:0]
	for i, e := range out {
		if i > 0 && e == out[i-1] {
			continue
		}
		uniq = append(uniq, e)
	}

	return uniq
}

// Graph returns the originating graph.
func (t *Tree) Graph() *core.Graph { return t.graph }

// Edges returns a copy of the tree edges in core.Compare order.
func (t *Tree) Edges() []core.Edge {
	out := make([]core.Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// Vertices returns the member vertex ids in ascending order.
// Complexity: O(V).
func (t *Tree) Vertices() []int {
	out := make([]int, 0, t.size)
	for v, in := range t.member {
		if in {
			out = append(out, v)
		}
	}

	return out
}

// HasVertex reports whether v is a member of the tree.
func (t *Tree) HasVertex(v int) bool {
	return v >= 0 && v < len(t.member) && t.member[v]
}

// HasEdge reports whether e (in any endpoint order) is a tree edge.
// Complexity: O(log n).
func (t *Tree) HasEdge(e core.Edge) bool {
	e = core.NewEdge(e.From, e.To, e.Weight)
	i := sort.Search(len(t.edges), func(i int) bool { return !t.edges[i].Less(e) })

	return i < len(t.edges) && t.edges[i] == e
}

// Len returns the number of tree edges.
func (t *Tree) Len() int { return len(t.edges) }

// VertexCount returns the number of member vertices.
func (t *Tree) VertexCount() int { return t.size }

// IsEmpty reports whether the tree has neither vertices nor edges, as the
// placeholders returned by a failed split do.
func (t *Tree) IsEmpty() bool { return t.size == 0 && len(t.edges) == 0 }

// TotalWeight sums the weights of the tree edges.
func (t *Tree) TotalWeight() int64 {
	var w int64
	for _, e := range t.edges {
		w += e.Weight
	}

	return w
}

// LastRemoved returns the edge most recently taken out by
// RemoveEdgeInMiddleRange on this tree, if any.
func (t *Tree) LastRemoved() (core.Edge, bool) {
	if t.removed == nil {
		return core.Edge{}, false
	}

	return *t.removed, true
}
