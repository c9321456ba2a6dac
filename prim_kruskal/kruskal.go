// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstperturb/core"
	"github.com/katalvlaran/mstperturb/dsu"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
// It uses a dsu.DisjointSet with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//
// A disconnected graph is not an error: the result then spans every
// component and holds V - c edges, c being the number of components.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Collect all edges via graph.Edges(), skip self-loops (e.From == e.To).
//  3. Sort edges by the core.Edge total order (weight, then From, then To).
//  4. Initialize a DisjointSet sized to graph.VertexCount().
//  5. Loop over sorted edges: if Union(u,v) merged two sets, include the edge.
//  6. Stop early once V-1 edges have been taken.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	numVerts := graph.VertexCount()
	if numVerts <= 1 {
		// Zero or one vertex: the forest is trivially empty.
		return []core.Edge{}, 0, nil
	}

	// 2. Collect all edges, skipping self-loops to avoid trivial cycles.
	allEdges := graph.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. The total order has no ties between distinct edges, so the
	//    resulting forest is independent of insertion order.
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})

	// 4. One singleton set per vertex.
	sets := dsu.New(numVerts)

	// 5. Build the forest by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, numVerts-1)
		totalWeight int64
	)
	for _, e := range edges {
		// Union reports false when both endpoints already share a component.
		if !sets.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 6. A spanning tree is complete; nothing further can be added.
		if len(mst) == numVerts-1 {
			break
		}
	}

	return mst, totalWeight, nil
}
