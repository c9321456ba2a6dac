// Package mstperturb maintains a minimum spanning tree of a weighted
// undirected graph under single-edge perturbations.
//
// What's inside:
//
//	core/         — Graph and canonical Edge value types (vertex ids [0, V))
//	dsu/          — disjoint-set union with union by rank and full path compression
//	prim_kruskal/ — minimum spanning forest via Kruskal (default) or Prim
//	mst/          — Tree state: remove, split, find reconnecting edge, union; Perturb
//	builder/      — deterministic graph fixtures (path, cycle, grid, random…)
//
// Typical flow:
//
//	g, _ := core.NewGraph(9)
//	_ = g.AddEdge(0, 1, 4)
//	...
//	t, _ := mst.New(g, mst.WithSeed(1))
//	res, err := mst.Perturb(t) // removed edge, two fragments, connecting edge, new tree
//
// See examples/network_rewire for a runnable scenario.
package mstperturb
