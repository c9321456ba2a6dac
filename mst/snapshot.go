// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: detached, encoder-friendly copy of a Tree and its Graph.

package mst

import "github.com/katalvlaran/mstperturb/core"

// EdgeRecord is the plain form of an edge for external encoders.
type EdgeRecord struct {
	Src    int   `json:"src" yaml:"src"`
	Dest   int   `json:"dest" yaml:"dest"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Snapshot is a detached copy of a tree's full structural state: the
// originating graph and the spanning tree over it.
type Snapshot struct {
	VertexCount  int          `json:"vertex_count" yaml:"vertex_count"`
	Edges        []EdgeRecord `json:"edges" yaml:"edges"`
	SpanningTree []EdgeRecord `json:"spanning_tree" yaml:"spanning_tree"`
	Vertices     []int        `json:"vertices" yaml:"vertices"`
}

// Snapshot copies the tree and its graph into a Snapshot.
func (t *Tree) Snapshot() Snapshot {
	return Snapshot{
		VertexCount:  t.graph.VertexCount(),
		Edges:        records(t.graph.Edges()),
		SpanningTree: records(t.edges),
		Vertices:     t.Vertices(),
	}
}

func records(edges []core.Edge) []EdgeRecord {
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		out[i] = EdgeRecord{Src: e.From, Dest: e.To, Weight: e.Weight}
	}

	return out
}
