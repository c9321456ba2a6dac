// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - stochastic constructors: RandomSparse, RandomEdges.
//
// Determinism:
//   - RandomSparse trials run in (i asc, j asc) order over i<j.
//   - RandomEdges draws (u, v) pairs in sequence.
//   - Fixed seed and options ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstperturb/core"
)

// Method tags used in error context.
const (
	MethodRandomSparse = "RandomSparse"
	MethodRandomEdges  = "RandomEdges"
)

// RandomSparse keeps each unordered pair {i,j} independently with
// probability p (Erdős–Rényi). p ∈ {0,1} needs no RNG.
// Complexity: O(n²) trials.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomEdges draws m vertex pairs uniformly; self-loop draws are skipped,
// and duplicates collapse in the graph, so fewer than m edges may result.
// Requires n ≥ 2 when m > 0.
// Complexity: O(m).
func RandomEdges(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 0 {
			return fmt.Errorf("%s: m=%d: %w", MethodRandomEdges, m, ErrInvalidParameter)
		}
		if m == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomEdges, ErrNeedRandSource)
		}
		if err := requireVertices(g, MethodRandomEdges, 2); err != nil {
			return err
		}

		n := g.VertexCount()
		for k := 0; k < m; k++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if err := addEdge(g, cfg, MethodRandomEdges, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
