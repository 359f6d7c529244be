// Package region partitions a grid into maximal 4-connected groups of equal
// cells ("regions") and measures their shape.
//
// What:
//
//   - Find scans the grid row-major (top-to-bottom, left-to-right) and grows a
//     region from every cell not yet claimed, using an explicit stack as the
//     work-list so large regions cannot exhaust the call stack.
//   - Every cell belongs to exactly one Region; regions are pairwise disjoint
//     and their union is the whole grid.
//   - Region order is the order in which each region's first cell is met by
//     the scan, so results are reproducible.
//
// Metrics (computed on first use, then cached on the Region):
//
//   - Area: number of member cells.
//   - Perimeter: number of (cell, side) pairs whose outward neighbour is not a
//     member (out-of-bounds counts as outside).
//   - Sides: number of straight boundary segments, equal to the number of
//     polygon corners. For each member cell and each of its four corners:
//     an outer corner is counted when both flanking cardinal neighbours are
//     outside; an inner (concave) corner is counted when both flanking
//     cardinal neighbours are members and the diagonal between them is not.
//
// Complexity:
//
//   - Find: O(W×H) time and memory.
//   - Perimeter, Sides: O(Area) on first call, O(1) afterwards.
//
// A Region holds no reference to the grid; it stays valid if the grid is
// later mutated, but its metrics describe the grid as it was scanned.
package region
