// Package gridgraph treats a colored grid as a graph of cells and labels its
// connected components ("objects").
//
// What:
//
//   - GridGraph wraps a validated grid.Grid with a chosen Connectivity.
//   - Components are maximal sets of non-background cells reachable through
//     neighbor steps; Background (0) cells never seed or join a component.
//   - Two labeling modes:
//     – AnyColor:  any non-background neighbor joins (whole-grid object count).
//     – SameColor: only neighbors with the seed's color join; this is the
//     canonical notion of an object for per-object analysis.
//
// Why:
//
//   - Puzzle grids: count shapes, isolate single-colored regions, and feed
//     each region to geometric and symmetry analysis.
//
// How:
//
//   - Row-major scan; the first unvisited non-background cell seeds a fill.
//   - The fill is an explicit FIFO work-list, never recursion, so component
//     size is bounded by memory, not by stack depth.
//   - A labelState owns the visited buffer, the work-list and the bounding-box
//     accumulator for one pass; it is discarded when the pass returns.
//
// Complexity:
//
//   - Components, CountComponents: O(R×C×d) time, O(R×C) memory (d = 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn8 (default, includes diagonals) or Conn4.
//
// Errors:
//
//   - grid.ErrNonRectangular, grid.ErrColorRange from construction.
package gridgraph
