// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstperturb/core"
)

// ErrInvalidGraph indicates that a nil graph was passed to an MST algorithm.
var ErrInvalidGraph = errors.New("prim_kruskal: nil graph")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from each unvisited vertex using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Func is the shared signature of Kruskal and Prim: it returns the
// spanning-forest edges and their total weight.
type Func func(graph *core.Graph) ([]core.Edge, int64, error)

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Lookup resolves a method name to its algorithm.
// Unknown names yield ErrUnknownMethod.
func Lookup(method string) (Func, error) {
	switch method {
	case MethodKruskal:
		return Kruskal, nil
	case MethodPrim:
		return Prim, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the minimum spanning forest.
//	int64       — total weight of those edges.
//	error       — non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fn, err := Lookup(cfg.Method)
	if err != nil {
		return nil, 0, err
	}

	return fn(graph)
}
