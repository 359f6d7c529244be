// Package clique finds fully connected vertex groups in an undirected
// graph.Graph.
//
// What:
//
//   - Triangles: every 3-clique, each reported once as a sorted triple.
//   - Maximal:   every maximal clique, via Bron–Kerbosch with pivoting.
//   - Maximum:   the largest clique; ties go to the lexicographically smallest.
//
// All results are sorted: IDs within a clique ascend, and cliques are ordered
// lexicographically, so output is deterministic.
//
// Complexity:
//
//   - Triangles: O(V·d²) for maximum degree d.
//   - Maximal:   O(3^(V/3)) worst case; near-linear on sparse graphs.
//
// Errors:
//
//   - ErrGraphNil:      graph pointer is nil.
//   - ErrDirectedGraph: cliques are only defined here for undirected graphs.
package clique
