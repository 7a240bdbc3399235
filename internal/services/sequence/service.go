package sequence

import (
	"errors"
	"fmt"

	"bitseq/internal/domain"
)

// Service generates sequences from a single bit source.
type Service struct {
	src domain.BitSource
}

var _ domain.SequenceGenerator = (*Service)(nil)

// New returns a generator drawing from src.
func New(src domain.BitSource) *Service { return &Service{src: src} }

// Generate draws domain.Length digits in order. Any source failure aborts the
// draw and is reported as domain.ErrEntropySourceUnavailable; no partial
// sequence is returned.
func (s *Service) Generate() (domain.Sequence, error) {
	var seq domain.Sequence
	for i := range seq {
		d, err := s.src.Bit()
		if err != nil {
			if !errors.Is(err, domain.ErrEntropySourceUnavailable) {
				err = fmt.Errorf("%w: %v", domain.ErrEntropySourceUnavailable, err)
			}
			return domain.Sequence{}, fmt.Errorf("draw digit %d: %w", i, err)
		}
		// Only the low bit is kept so every element stays in {0, 1}.
		seq[i] = d & 1
	}
	return seq, nil
}

// Render formats seq for printing.
func Render(seq domain.Sequence, f domain.Format) string {
	if f == domain.FormatBare {
		return seq.String()
	}
	return domain.Label + seq.String()
}
