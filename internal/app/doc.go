// Package app wires application dependencies for the CLI.
//
// It builds the bit source and sequence generator from Config, exposing them
// via the Wire struct for commands to use.
package app
