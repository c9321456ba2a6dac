// SPDX-License-Identifier: MIT
// Package core defines the Graph and Edge value types consumed by the
// spanning-tree builders and the perturbation engine.
//
// This file declares Edge, Graph, the sentinel errors and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with V < 0.
//	ErrVertexOutOfRange    - AddEdge endpoint outside [0, V).
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint lies outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is an undirected weighted edge in canonical form: From <= To.
//
// Edge is a comparable value; two edges joining the same pair of vertices
// with the same weight are == regardless of the order the endpoints were
// given in, so Edge is safe to use as a map key.
type Edge struct {
	// From is the smaller endpoint id.
	From int

	// To is the larger endpoint id.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// NewEdge returns the canonical Edge joining a and b.
// Complexity: O(1).
func NewEdge(a, b int, weight int64) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{From: a, To: b, Weight: weight}
}

// Compare orders edges by Weight ascending, then From, then To.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Edge) int {
	switch {
	case a.Weight != b.Weight:
		if a.Weight < b.Weight {
			return -1
		}
		return 1
	case a.From != b.From:
		if a.From < b.From {
			return -1
		}
		return 1
	case a.To != b.To:
		if a.To < b.To {
			return -1
		}
		return 1
	}

	return 0
}

// Less reports whether e sorts before o in the Edge total order.
func (e Edge) Less(o Edge) bool { return Compare(e, o) < 0 }

// Joins reports whether the edge has one endpoint in each of the sets
// described by the membership predicates inA and inB.
func (e Edge) Joins(inA, inB func(int) bool) bool {
	return (inA(e.From) && inB(e.To)) || (inA(e.To) && inB(e.From))
}

// String renders the edge as "from-to:weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%d", e.From, e.To, e.Weight)
}

// Graph is a fixed-size undirected weighted graph over vertex ids [0, V).
//
// The vertex count is fixed at construction; the edge set only grows.
// Adjacency is not precomputed: algorithms derive what they need from Edges().
// mu guards edges and seen, so a Graph may be shared across goroutines.
type Graph struct {
	mu sync.RWMutex // guards edges and seen

	vertexCount int               // V, immutable
	edges       []Edge            // insertion order
	seen        map[Edge]struct{} // canonical identity set
}

// NewGraph creates an empty Graph with vertexCount vertices.
// Complexity: O(1).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, vertexCount)
	}

	return &Graph{
		vertexCount: vertexCount,
		seen:        make(map[Edge]struct{}),
	}, nil
}
