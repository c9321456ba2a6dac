// Package builder produces deterministic *core.Graph fixtures for tests,
// benchmarks and examples of spanning-tree maintenance.
//
// One orchestrator, BuildGraph(n, bopts, cons...), allocates a graph with
// vertices [0, n), resolves the functional options and runs every
// Constructor in order. Constructors only add edges; composing several
// (e.g. Path then RandomEdges) yields a connected graph with extra chords.
//
// Topologies:
//
//	Path()           0—1—…—(n-1)
//	Cycle()          Path plus (n-1)—0
//	Star()           0 joined to every other vertex
//	Complete()       every unordered pair {i,j}, i<j
//	Grid(cols)       4-neighbourhood lattice, n must be a multiple of cols
//	RandomSparse(p)  each pair {i,j} kept independently with probability p
//	RandomEdges(m)   m uniformly drawn pairs, self-loops skipped
//
// Weights come from the configured WeightFn (constant 1 by default).
// Stochastic constructors need an RNG: WithSeed or WithRand.
//
// Errors are sentinels; branch with errors.Is:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrInvalidParameter, ErrConstructFailed.
package builder
