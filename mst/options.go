// SPDX-License-Identifier: MIT
// options.go — functional options for Tree construction.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     Tree operations themselves never panic on valid trees.
//   • Determinism is explicit: seed via WithSeed or inject via WithRand.
//   • Configuration is inherited by every tree derived through
//     SplitIntoComponents and UnionWith.

package mst

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mstperturb/prim_kruskal"
)

// Option customizes a Tree before it is built.
type Option func(*config)

// config holds construction-time settings shared by a tree and its descendants.
type config struct {
	rng    *rand.Rand // source for RemoveEdgeInMiddleRange
	method string     // prim_kruskal method name
}

// defaultConfig returns Kruskal with a wall-clock seeded RNG.
func defaultConfig() config {
	return config{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		method: prim_kruskal.MethodKruskal,
	}
}

// WithRand injects the RNG used to pick the edge to remove.
// The RNG is shared with derived trees and is not safe for concurrent use.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mst: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMethod selects the spanning-tree algorithm by name
// (prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim).
func WithMethod(method string) Option {
	return func(c *config) {
		c.method = method
	}
}
