// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_topology.go - deterministic topologies: Path, Cycle, Star, Complete, Grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstperturb/core"
)

// Method tags used in error context.
const (
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodStar     = "Star"
	MethodComplete = "Complete"
	MethodGrid     = "Grid"
)

// Path links 0—1—…—(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, MethodPath, 2); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			if err := addEdge(g, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path plus the closing edge (n-1)—0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, MethodCycle, 3); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star joins vertex 0 to every other vertex. Requires n ≥ 2.
// Complexity: O(n).
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, MethodStar, 2); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			if err := addEdge(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete adds every unordered pair {i,j}, i<j, in (i asc, j asc) order.
// Requires n ≥ 1. Complexity: O(n²).
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, MethodComplete, 1); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid lays the vertices out row-major in rows of cols and links
// 4-neighbours (right, then down). Requires cols ≥ 1 dividing n.
// Complexity: O(n).
func Grid(cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if cols < 1 || n%cols != 0 {
			return fmt.Errorf("%s: cols=%d does not divide n=%d: %w", MethodGrid, cols, n, ErrInvalidParameter)
		}
		for v := 0; v < n; v++ {
			if (v+1)%cols != 0 {
				if err := addEdge(g, cfg, MethodGrid, v, v+1); err != nil {
					return err
				}
			}
			if v+cols < n {
				if err := addEdge(g, cfg, MethodGrid, v, v+cols); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
