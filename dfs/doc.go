// Package dfs implements depth-first topological sort over a graph.Graph.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//     Vertices are coloured White (unseen), Gray (on the current path) and
//     Black (finished); meeting a Gray vertex means a back-edge, i.e. a cycle.
//
// Why:
//
//   - Order items by pairwise precedence rules ("a must come before b").
//   - Check whether a set of rules is consistent.
//
// Determinism:
//
//	Vertices and neighbours are visited in ascending ID order, so the same
//	graph always yields the same ordering.
//
// Complexity:
//
//   - Time:   O(V + E) visits, plus sorting of IDs.
//   - Memory: O(V) for the state map and recursion stack.
package dfs
