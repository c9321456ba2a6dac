// SPDX-License-Identifier: MIT
// File: perturb.go
// Role: The perturbation cycle Built → Split → Reconnected:
//       RemoveEdgeInMiddleRange, SplitIntoComponents, FindMinEdgeBetween, UnionWith.
// "No result" outcomes are reported with ok == false, never with errors.

package mst

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/mstperturb/core"
	"github.com/katalvlaran/mstperturb/dsu"
)

// middleRangeIndex picks the position to remove from a sequence of n > 0 edges.
//
//   - n <= 2: always 0.
//   - otherwise: uniform over [floor(0.3n), floor(0.7n)] inclusive,
//     falling back to [0, n-1] if that range is empty.
func middleRangeIndex(n int, r *rand.Rand) int {
	if n <= 2 {
		return 0
	}
	// Integer arithmetic gives the floors exactly for n >= 0.
	start, end := 3*n/10, 7*n/10
	if start >= end {
		return r.Intn(n)
	}

	return start + r.Intn(end-start+1)
}

// RemoveEdgeInMiddleRange removes one edge chosen from the middle of the
// sorted edge sequence and returns it. It reports false, leaving the tree
// untouched, when the tree has no edges.
//
// This is the only operation that mutates a Tree.
// Complexity: O(n).
func (t *Tree) RemoveEdgeInMiddleRange() (core.Edge, bool) {
	n := len(t.edges)
	if n == 0 {
		return core.Edge{}, false
	}

	idx := middleRangeIndex(n, t.cfg.rng)
	e := t.edges[idx]
	t.edges = append(t.edges[:idx], t.edges[idx+1:]...)
	t.removed = &e

	return e, true
}

// restore puts e back into its sorted position and reinstates prev as the
// last removed edge. Used by Perturb to undo a removal when a later step
// yields no result.
func (t *Tree) restore(e core.Edge, prev *core.Edge) {
	i := sort.Search(len(t.edges), func(i int) bool { return !t.edges[i].Less(e) })
	t.edges = append(t.edges, core.Edge{})
	copy(t.edges[i+1:], t.edges[i:])
	t.edges[i] = e
	t.removed = prev
}

// SplitIntoComponents partitions every vertex of the originating graph
// (every edge endpoint; untouched ids are not vertices) by the connectivity
// of the current tree edges and returns the first two partitions as new
// trees.
//
// Partitions are ordered by their smallest vertex id. Each edge goes to the
// partition holding both of its endpoints. When fewer than two partitions
// exist it returns two empty placeholder trees and false.
//
// The receiver is not modified.
// Complexity: O(V + E + n·α(V)).
func (t *Tree) SplitIntoComponents() (*Tree, *Tree, bool) {
	n := t.graph.VertexCount()
	sets := dsu.New(n)
	for _, e := range t.edges {
		sets.Union(e.From, e.To)
	}

	// 1) Bucket graph vertices by root; Vertices() is ascending, so each
	//    partition's discovery index follows its smallest member.
	var (
		order = make([]int, 0, 2) // roots in discovery order
		index = make(map[int]int) // root → position in order
		parts [][]int
	)
	for _, v := range t.graph.Vertices() {
		root := sets.Find(v)
		pos, seen := index[root]
		if !seen {
			pos = len(order)
			index[root] = pos
			order = append(order, root)
			parts = append(parts, nil)
		}
		parts[pos] = append(parts[pos], v)
	}

	if len(parts) < 2 {
		return newEmpty(t.graph, t.cfg), newEmpty(t.graph, t.cfg), false
	}

	// 2) Materialize the first two partitions.
	first, second := newEmpty(t.graph, t.cfg), newEmpty(t.graph, t.cfg)
	for _, v := range parts[0] {
		first.member[v] = true
	}
	first.size = len(parts[0])
	for _, v := range parts[1] {
		second.member[v] = true
	}
	second.size = len(parts[1])

	// 3) Assign edges; t.edges is sorted, so both outputs stay sorted.
	for _, e := range t.edges {
		switch {
		case first.member[e.From] && first.member[e.To]:
			first.edges = append(first.edges, e)
		case second.member[e.From] && second.member[e.To]:
			second.edges = append(second.edges, e)
		}
	}

	return first, second, true
}

// FindMinEdgeBetween scans every edge of the originating graph and returns
// the smallest one, by core.Compare, with one endpoint in t and the other in
// other. It reports false when no such edge exists.
//
// Complexity: O(E).
func (t *Tree) FindMinEdgeBetween(other *Tree) (core.Edge, bool) {
	if other == nil {
		return core.Edge{}, false
	}

	var (
		best  core.Edge
		found bool
	)
	for _, e := range t.graph.Edges() {
		if !e.Joins(t.HasVertex, other.HasVertex) {
			continue
		}
		if !found || e.Less(best) {
			best, found = e, true
		}
	}

	return best, found
}

// UnionWith returns a new tree whose vertices are the union of both trees'
// vertices and whose edges are the union of both edge sets plus connecting,
// when connecting is non-nil.
//
// connecting is trusted to be the result of FindMinEdgeBetween; it is not
// checked for cycles. Neither operand is modified. The result keeps the
// receiver's graph and configuration.
// Complexity: O(V + n log n).
func (t *Tree) UnionWith(other *Tree, connecting *core.Edge) *Tree {
	out := newEmpty(t.graph, t.cfg)
	copy(out.member, t.member)

	edges := make([]core.Edge, 0, len(t.edges)+1)
	edges = append(edges, t.edges...)
	if other != nil {
		for v, in := range other.member {
			if in && v < len(out.member) {
				out.member[v] = true
			}
		}
		edges = append(edges, other.edges...)
	}
	if connecting != nil {
		edges = append(edges, core.NewEdge(connecting.From, connecting.To, connecting.Weight))
	}

	for _, in := range out.member {
		if in {
			out.size++
		}
	}
	out.edges = sortedUnique(edges)

	return out
}
