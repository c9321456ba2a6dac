// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Edge insertion and read-only queries on Graph.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Vertices() returns edge endpoints, ids ascending.
// Concurrency:
//   - AddEdge under mu write lock.
//   - Read queries under mu read lock; every slice returned is a fresh copy.

package core

import "fmt"

// AddEdge inserts the undirected edge src—dest with the given weight.
//
// Steps:
//  1. Validate both endpoints lie in [0, V) else ErrVertexOutOfRange.
//  2. Normalize to canonical form.
//  3. Lock mu; skip if an identical edge (same endpoints and weight) exists.
//  4. Append to the edge list and the identity set.
//
// Parallel edges with different weights are kept; exact duplicates are
// silently ignored so the edge collection stays a set.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dest int, weight int64) error {
	// 1) Range validation happens before touching any state.
	if !g.HasVertex(src) {
		return fmt.Errorf("%w: src %d not in [0,%d)", ErrVertexOutOfRange, src, g.vertexCount)
	}
	if !g.HasVertex(dest) {
		return fmt.Errorf("%w: dest %d not in [0,%d)", ErrVertexOutOfRange, dest, g.vertexCount)
	}

	e := NewEdge(src, dest, weight)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.seen[e]; dup {
		return nil
	}
	g.seen[e] = struct{}{}
	g.edges = append(g.edges, e)

	return nil
}

// HasVertex reports whether id lies in [0, V).
// Complexity: O(1). V is immutable, so no lock is taken.
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.vertexCount
}

// HasEdge reports whether the exact canonical edge a—b with weight is present.
func (g *Graph) HasEdge(a, b int, weight int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.seen[NewEdge(a, b, weight)]

	return ok
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns, in ascending order, the ids that are an endpoint of at
// least one edge. Ids in [0, V) that no edge touches are valid for AddEdge
// and HasVertex but are not vertices of the graph's structure.
// Complexity: O(V + E).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	used := make([]bool, g.vertexCount)
	count := 0
	for _, e := range g.edges {
		for _, v := range [2]int{e.From, e.To} {
			if !used[v] {
				used[v] = true
				count++
			}
		}
	}

	out := make([]int, 0, count)
	for v, in := range used {
		if in {
			out = append(out, v)
		}
	}

	return out
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
