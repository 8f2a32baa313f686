// Package analyzer produces one aggregate Report per grid by combining grid
// statistics, whole-grid symmetry, the color-agnostic object count and the
// per-object descriptions.
//
// Analyze is a pure function of its input: it owns every intermediate buffer
// and shares nothing between calls, so analyses of distinct grids (or of one
// grid that nobody mutates) may run concurrently without locking.
//
// Malformed input is rejected at the boundary by AnalyzeValues (or by
// Analyze when handed an unvalidated grid.Grid): no partial Report is ever
// returned.
package analyzer
