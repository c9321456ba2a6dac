// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows one tree per component using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/mstperturb/core"
)

// Prim computes the minimum spanning forest of an undirected, weighted graph
// by growing a tree from every not-yet-visited vertex, in ascending id order,
// using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Derive adjacency lists from graph.Edges(), skipping self-loops.
//  3. For each root r in 0..V-1 not yet visited:
//     a. Mark r visited and push its incident edges.
//     b. Pop the smallest edge (core.Edge total order); skip if its far end is visited.
//     c. Otherwise take the edge, mark the far end visited, push its incident edges.
//  4. Return forest edges in discovery order and their total weight.
//
// Because the core.Edge order is strict, the forest equals Kruskal's as a set.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	n := graph.VertexCount()
	if n <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Adjacency is not stored on the graph; build it locally.
	adj := make([][]core.Edge, n)
	for _, e := range graph.Edges() {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], e)
	}

	var (
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
		pq          = &edgePQ{}
	)

	// push enqueues every edge from u to a still-unvisited vertex.
	push := func(u int) {
		for _, e := range adj[u] {
			to := e.From
			if to == u {
				to = e.To
			}
			if !visited[to] {
				heap.Push(pq, pqItem{edge: e, to: to})
			}
		}
	}

	// 3. One tree per component.
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)

		for pq.Len() > 0 {
			it := heap.Pop(pq).(pqItem)
			if visited[it.to] {
				// Both ends already in the tree: this edge would close a cycle.
				continue
			}
			visited[it.to] = true
			mst = append(mst, it.edge)
			totalWeight += it.edge.Weight
			push(it.to)
		}
	}

	// 4. Done.
	return mst, totalWeight, nil
}

// pqItem is a candidate edge together with the vertex it would add.
type pqItem struct {
	edge core.Edge
	to   int
}

// edgePQ implements heap.Interface for a min-heap of pqItem, ordered by the core.Edge total order.
type edgePQ []pqItem

// Len returns the number of items in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by core.Edge order, then by target vertex.
func (pq edgePQ) Less(i, j int) bool {
	if c := core.Compare(pq[i].edge, pq[j].edge); c != 0 {
		return c < 0
	}
	return pq[i].to < pq[j].to
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new pqItem to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
