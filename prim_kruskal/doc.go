// Package prim_kruskal provides two algorithms for computing the minimum
// spanning forest of an undirected, weighted *core.Graph: Kruskal's
// algorithm (the default) and Prim's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a disconnected graph the same construction yields a minimum spanning forest
//     with V - c edges, c being the number of connected components.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: sort all edges by the core.Edge total order, then walk them from smallest
//     to largest, keeping an edge iff a dsu.DisjointSet reports its endpoints in different sets.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree per component from the lowest unvisited vertex id, always
//     extracting the smallest candidate edge from a min-heap.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Determinism
//
//	core.Compare orders edges by weight, then From, then To. No two distinct
//	edges compare equal, so the minimum spanning forest is unique and both
//	algorithms return the same edge set; only the output order differs
//	(Kruskal: ascending; Prim: discovery order).
//
// Choosing an algorithm
//
//	Compute(g, WithMethod(MethodPrim)) or Lookup(MethodKruskal) select an algorithm by name,
//	which is how the mst package exposes the choice as configuration.
//
// Error Conditions
//
//   - ErrInvalidGraph  – graph is nil.
//   - ErrUnknownMethod – Compute/Lookup given a method other than MethodKruskal or MethodPrim.
package prim_kruskal
