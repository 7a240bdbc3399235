// Package store provides file-based input and output for the analysis
// harness.
//
// It reads the JSON settings document and the JSON map of labelled bit
// strings, and writes plain-text reports atomically (temp file + rename).
// ReportFileStore is safe for concurrent use via internal locking.
package store
