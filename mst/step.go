// SPDX-License-Identifier: MIT
// File: step.go
// Role: Perturb, one Built → Split → Reconnected cycle with rollback.

package mst

import (
	"fmt"

	"github.com/katalvlaran/mstperturb/core"
)

// StepResult describes one completed perturbation.
type StepResult struct {
	// Removed is the edge taken out of the input tree.
	Removed core.Edge
	// Connecting is the cheapest graph edge that rejoined the two fragments.
	Connecting core.Edge
	// Components are the two fragments produced by the split.
	Components [2]*Tree
	// Tree is the reconnected spanning tree.
	Tree *Tree
}

// Perturb runs one full cycle on t: remove a middle-range edge, split into
// two components, find the cheapest reconnecting edge and union them.
//
// On success t keeps the removal and the result carries the new tree.
// If any step yields no result, t is restored to its prior state, including
// LastRemoved, and one of ErrEmptyTree, ErrNoSplit or ErrNoCrossEdge is
// returned.
func Perturb(t *Tree) (StepResult, error) {
	prev := t.removed
	removed, ok := t.RemoveEdgeInMiddleRange()
	if !ok {
		return StepResult{}, ErrEmptyTree
	}

	a, b, ok := t.SplitIntoComponents()
	if !ok {
		t.restore(removed, prev)
		return StepResult{}, fmt.Errorf("%w: removed %v", ErrNoSplit, removed)
	}

	conn, ok := a.FindMinEdgeBetween(b)
	if !ok {
		t.restore(removed, prev)
		return StepResult{}, fmt.Errorf("%w: removed %v", ErrNoCrossEdge, removed)
	}

	return StepResult{
		Removed:    removed,
		Connecting: conn,
		Components: [2]*Tree{a, b},
		Tree:       a.UnionWith(b, &conn),
	}, nil
}
