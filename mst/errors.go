// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors reported by Perturb.

package mst

import "errors"

// Sentinel errors reported by Perturb. The primitive Tree operations never
// return errors; they report "no result" through a boolean instead.
var (
	// ErrEmptyTree indicates there was no edge to remove.
	ErrEmptyTree = errors.New("mst: tree has no edges")
	// ErrNoSplit indicates the remaining edges did not fall into two components.
	ErrNoSplit = errors.New("mst: removal did not split the tree")
	// ErrNoCrossEdge indicates no graph edge reconnects the two components.
	ErrNoCrossEdge = errors.New("mst: no edge between components")
)
