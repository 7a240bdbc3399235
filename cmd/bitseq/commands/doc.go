// Package commands defines the bitseq CLI.
//
// Commands
//
//   - (root)   Generate one 128-bit sequence and print it
//   - analyze  Run the statistical test battery over stored sequences
//
// # Output
//
// By default the root command prints a single line,
//
//	Random sequence: 0110...1
//
// and --bare drops the label. Diagnostics go to stderr through logrus; a
// failure prints "Error: <message>" to stderr, no sequence, and main exits 1.
package commands
