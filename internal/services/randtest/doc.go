// Package randtest runs a small battery of statistical randomness tests over
// a bit string: the Serial test, Maurer's universal statistical test and the
// Cumulative sums test, plus the plain ones frequency.
//
// Each test returns a p-value in [0, 1]; small values indicate the string is
// unlikely to be random.
package randtest
