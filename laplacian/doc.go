// Package laplacian derives the two transformed graphs the neighborhood
// statistics run on: the negative Laplacian L of an input graph A, and the
// information graph g̃ obtained from L by inverting the scalar function v.
//
// NegLaplacian emits, for every ordered pair (i, j) with i ≠ j, the
// max-absolute weight over the multiset of edges between i and j in A, then
// closes each row with the negated row sum on the diagonal:
//
//	L[i][j] = max{|w| : w between i and j},  L[i][i] = -Σ_{j≠i} L[i][j]
//
// The result is the usual graph Laplacian with negativity carried explicitly
// on the diagonal, so downstream threshold tests stay in positive space via
// absolute values. The output is directed.
//
// GTilde maps L onto an undirected graph whose weights are
//
//	g(i,j) = max( w(M / W(i,j)), ε )
//
// where M is the global max-absolute weight of L, W(i,j) the max-absolute
// weight over the symmetric union of the (i,j) and (j,i) buckets, w the
// interpolated inverse of v, and ε the shared numerical floor that keeps
// later distance arithmetic away from zero weights. Diagonal entries of L
// become self-loops in g̃; traversals skip them.
//
// Both transforms fan their pair iteration out over a worker pool; inserts
// into the output container are serialized by its internal lock, and GTilde
// pre-warms the shared v/w table so workers only ever take read locks.
package laplacian
