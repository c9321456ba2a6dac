// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates the graph is smaller than a constructor requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidParameter indicates a shape parameter that does not fit the graph
// (e.g. Grid columns not dividing the vertex count, negative edge count).
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrConstructFailed indicates a nil constructor or a failed graph allocation.
var ErrConstructFailed = errors.New("builder: construction failed")
