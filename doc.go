// Package gridscope is a feature extractor for small colored puzzle grids:
// integer-labeled cells where 0 is background and every other value is an
// opaque color.
//
// What it extracts:
//
//   - Grid statistics: dimensions, unique colors, color histogram, majority color.
//   - Symmetry: vertical, horizontal, diagonal and 90° rotational, exact equality.
//   - Objects: 8-connected single-colored regions with bounding box, size,
//     solid/hollow classification and the same four symmetry tests on each
//     object's own subgrid.
//
// Packages, leaf first:
//
//	grid/      — Color, Grid, Point, BoundingBox, PixelSet, validation, statistics
//	symmetry/  — the four symmetry predicates and flip/rotate helpers
//	gridgraph/ — work-list flood fill, AnyColor and SameColor labeling
//	objects/   — per-object records built from SameColor components
//	analyzer/  — one aggregate Report per grid
//
// Collaborators that consume grids or reports but are not part of the core:
//
//	transform/ — Fill: recolor uniform interiors
//	format/    — human-readable report text with color names
//	render/    — PNG heat map via gonum/plot
//	logging/   — replaceable package-level logger
//	cmd/gridscope — command-line driver
//
// Quick ASCII example, a hollow ring:
//
//	1 1 1
//	1 0 1
//	1 1 1
//
// is one object of size 8 in a 3×3 box: not solid, hollow, and symmetric
// under all four tests.
package gridscope
