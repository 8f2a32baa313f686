// Package format renders an analyzer.Report as human-readable text.
//
// The output has four sections: "Grid Analysis", "Color Distribution",
// "Grid Symmetry Analysis" and "Objects Analysis". Each object is drawn in a
// box frame titled Object_001, Object_002, and so on. Colors print as
// "N (Name)" using a lookup table; values missing from the table print as
// "N (N)".
//
// The analysis core never imports this package.
package format
