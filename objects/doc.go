// Package objects turns same-color components into immutable object records.
//
// For each component found by gridgraph in SameColor mode, in discovery
// order, Describe:
//
//  1. takes the bounding box and pixel set,
//  2. extracts the tight subgrid (object pixels keep their color, every other
//     cell of the box is Background),
//  3. classifies IsSolid: pixel count equals bounding-box area,
//  4. classifies IsHollow: some cell strictly inside the box is not a member
//     while its four axis neighbors are,
//  5. evaluates the four symmetry predicates on the subgrid,
//  6. emits an Object with positions sorted by (row, col).
//
// Describe accepts only 8-connected grid graphs and returns ErrConnectivity
// otherwise; DescribeGrid always builds one.
//
// IsSolid implies !IsHollow. A component may be neither solid nor hollow when
// its gaps touch the bounding-box border.
package objects
