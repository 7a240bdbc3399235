// Package entropy supplies the bit sources behind sequence generation.
//
// Contents
//
//   - Seed acquisition from the platform CSPRNG (NewSeed, NewSeedFrom)
//   - Deterministic seed derivation from a caller string (DeriveSeed)
//   - A ChaCha20 keystream source, reproducible for a fixed seed (Keystream)
//   - A source that reads every block straight from an io.Reader, normally
//     crypto/rand (ReaderSource, NewSystem)
//
// # Notes
//
// Every failure to obtain bytes is reported as an error wrapping
// domain.ErrEntropySourceUnavailable. Nothing is retried. Seed material is
// wiped with memzero once the keystream cipher has been keyed.
package entropy
