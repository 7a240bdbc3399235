package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"bitseq/internal/domain"
)

// SeedBytes is the ChaCha20 key size.
const SeedBytes = 32

// Seed keys a Keystream.
type Seed [SeedBytes]byte

var seedInfo = []byte("bitseq keystream seed v1")

// NewSeed draws a seed from crypto/rand.
func NewSeed() (Seed, error) {
	return NewSeedFrom(rand.Reader)
}

// NewSeedFrom draws a seed from r.
func NewSeedFrom(r io.Reader) (Seed, error) {
	var s Seed
	if _, err := io.ReadFull(r, s[:]); err != nil {
		return Seed{}, fmt.Errorf("%w: read seed: %v", domain.ErrEntropySourceUnavailable, err)
	}
	return s, nil
}

// DeriveSeed stretches an arbitrary string into a seed with HKDF-SHA256.
// The same input always yields the same seed.
func DeriveSeed(input string) Seed {
	var s Seed
	kdf := hkdf.New(sha256.New, []byte(input), nil, seedInfo)
	// HKDF-SHA256 can emit up to 255*32 bytes; 32 never fails.
	_, _ = io.ReadFull(kdf, s[:])
	return s
}
