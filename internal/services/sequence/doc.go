// Package sequence draws fixed-length binary sequences from a bit source and
// renders them for output.
//
// A Service owns exactly one domain.BitSource, seeded once at startup, and
// draws Length digits from it per call to Generate.
package sequence
