// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry-point and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstperturb/core"
)

// Constructor adds edges to g using the resolved builderConfig. Constructors:
//   - validate parameters early and return sentinel errors (no panics);
//   - emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with vertices [0, n), resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u—v with the configured weight, tagging errors with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d,w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// requireVertices returns ErrTooFewVertices if g has fewer than min vertices.
func requireVertices(g *core.Graph, method string, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
