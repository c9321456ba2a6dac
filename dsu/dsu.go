// SPDX-License-Identifier: MIT
// Package dsu provides a fixed-size disjoint-set (union-find) over the
// integer ids [0, n), with union by rank and full path compression.
//
// Out-of-range ids are the caller's responsibility; they panic with an
// index error like any slice access.
package dsu

// DisjointSet partitions [0, n) into disjoint sets.
//
// parent[i] == i marks a root. rank[i] is an upper bound on the height of
// the tree rooted at i and is only meaningful for roots.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int // number of disjoint sets remaining
}

// New creates n singleton sets with ids 0..n-1.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of the set containing x.
// Every node on the walked path is re-pointed directly to the root.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) int {
	// 1) Walk to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2) Second pass: full compression.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge
// happened (false when they already shared a set).
//
// The lower-rank root is attached under the higher-rank root. On a rank
// tie the root of y goes under the root of x and x's rank grows by one.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }

// Len returns n, the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }
