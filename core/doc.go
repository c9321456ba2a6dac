// Package core provides the immutable-after-construction weighted graph
// that every spanning-tree computation in this module reads from.
//
// The Graph G = (V,E) is deliberately small:
//
//   - V is fixed at construction; vertices are the integer ids [0, V).
//   - Edges are undirected, weighted (int64) and stored in canonical form
//     (From <= To), so a—b and b—a with equal weight are the same edge.
//   - The edge collection is a set: inserting an identical edge twice is a no-op.
//   - Edges are append-only; there is no removal.
//   - A sync.RWMutex guards the edge catalog, so one Graph may be shared by
//     many spanning trees and goroutines without extra synchronization.
//
// Edge total order (Compare / Less):
//
//	Weight ascending, then From ascending, then To ascending.
//	Sorting by this order is deterministic regardless of insertion order.
//
// Core Methods:
//
//	NewGraph(V int) (*Graph, error)            // O(1)
//	AddEdge(src, dest int, weight int64) error // O(1) amortized
//	HasVertex(id int) bool                     // O(1)
//	HasEdge(a, b int, weight int64) bool       // O(1)
//	Vertices() []int                           // O(V+E), edge endpoints ascending
//	Edges() []Edge                             // O(E), insertion order, copy
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(1)
//
// Errors:
//
//	ErrNegativeVertexCount – NewGraph(V) with V < 0
//	ErrVertexOutOfRange    – AddEdge endpoint outside [0, V)
package core
