// Package input reads puzzle text and splits it into the shapes the day
// solvers consume: lines, blank-line separated chunks, and integer lists.
package input
