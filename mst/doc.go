// Package mst maintains a minimum spanning tree of a core.Graph under
// single-step perturbations: remove one tree edge, split the tree into the
// two resulting fragments, find the cheapest graph edge that rejoins them
// and merge the fragments back into one tree.
//
// State machine:
//
//	Built ──RemoveEdgeInMiddleRange──▶ (edge removed in place)
//	      ──SplitIntoComponents──────▶ Split (two new trees)
//	      ──FindMinEdgeBetween───────▶ cross edge
//	      ──UnionWith────────────────▶ Reconnected (new tree) ──▶ Built
//
// Perturb runs the whole cycle and reports which step, if any, produced no
// result via ErrEmptyTree, ErrNoSplit or ErrNoCrossEdge.
//
// Construction
//
//	t, err := mst.New(g, mst.WithSeed(1), mst.WithMethod(prim_kruskal.MethodPrim))
//
// New builds the minimum spanning forest with the selected prim_kruskal
// algorithm (Kruskal by default) and covers every vertex of g: every id
// that is an endpoint of some edge. Ids no edge touches are not vertices.
//
// Determinism
//
//   - Tree edges are kept in core.Compare order; the middle-range removal
//     indexes into that order.
//   - Split partitions are ordered by their smallest vertex id.
//   - Cross-edge ties resolve by core.Compare.
//   - The only randomness is the removal index, drawn from the injected RNG.
//
// Ownership
//
//	The Graph is shared and read-only. Getters return copies. A Tree is not
//	safe for concurrent use; run independent perturbation sequences on
//	independent trees (and independent RNGs).
package mst
