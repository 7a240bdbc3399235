package entropy

import (
	"golang.org/x/crypto/chacha20"

	"bitseq/internal/domain"
	"bitseq/internal/util/memzero"
)

const blockBytes = 64

// Keystream hands out the bits of a ChaCha20 keystream, least significant
// bit of each byte first. It is not safe for concurrent use.
type Keystream struct {
	cipher *chacha20.Cipher
	buf    [blockBytes]byte
	pos    int // next bit index into buf
}

var _ domain.BitSource = (*Keystream)(nil)

// NewKeystream keys a ChaCha20 cipher with seed and a zero nonce.
// The caller's seed is wiped before returning.
func NewKeystream(seed *Seed) (*Keystream, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	memzero.Zero(seed[:])
	if err != nil {
		return nil, err
	}
	return &Keystream{cipher: c, pos: blockBytes * 8}, nil
}

// Bit returns the next keystream bit. It never fails.
func (k *Keystream) Bit() (domain.Digit, error) {
	if k.pos == blockBytes*8 {
		clear(k.buf[:])
		k.cipher.XORKeyStream(k.buf[:], k.buf[:])
		k.pos = 0
	}
	d := domain.Digit(k.buf[k.pos/8] >> (k.pos % 8) & 1)
	k.pos++
	return d, nil
}
