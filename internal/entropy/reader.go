package entropy

import (
	"crypto/rand"
	"fmt"
	"io"

	"bitseq/internal/domain"
)

// ReaderSource buffers blocks read from an io.Reader and hands out their
// bits, least significant first.
type ReaderSource struct {
	r   io.Reader
	buf [blockBytes]byte
	pos int
}

var _ domain.BitSource = (*ReaderSource)(nil)

// NewSystem reads from the operating system CSPRNG.
func NewSystem() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

// NewReaderSource wraps r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, pos: blockBytes * 8}
}

// Bit returns the next bit, refilling the buffer from the reader when empty.
func (s *ReaderSource) Bit() (domain.Digit, error) {
	if s.pos == blockBytes*8 {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			return 0, fmt.Errorf("%w: read block: %v", domain.ErrEntropySourceUnavailable, err)
		}
		s.pos = 0
	}
	d := domain.Digit(s.buf[s.pos/8] >> (s.pos % 8) & 1)
	s.pos++
	return d, nil
}
