// Package builder generates stochastic input graphs for the analysis
// pipeline.
//
// WattsStrogatz samples a small-world network: a ring lattice where every
// vertex connects to its AvgDeg nearest neighbors, followed by one rewiring
// pass that redirects each lattice edge with probability p to a uniformly
// chosen new destination, rerolling targets that would duplicate an existing
// adjacency or form a self-loop. Edge weights are fresh uniform draws in
// [0, 1). The output is undirected.
//
// Determinism: for a fixed *rand.Rand seed the generated edge set and
// weights are reproducible, because vertices and lattice offsets are visited
// in a fixed ascending order.
//
// Errors (sentinel): ErrTooFewVertices, ErrBadDegree, ErrInvalidProbability,
// ErrNeedRandSource.
package builder
