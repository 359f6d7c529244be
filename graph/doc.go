// Package graph defines a small string-keyed adjacency graph used by the
// ordering and clique algorithms.
//
// Graphs are undirected by default; WithDirected(true) makes every edge
// one-way. Self-loops are rejected unless WithLoops is given. Parallel edges
// collapse: adding an existing edge again is a no-op.
//
// Vertices and Neighbors return sorted IDs, so algorithms that iterate them
// are deterministic.
//
// A Graph is not safe for concurrent mutation.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package graph
