package interfaces

import types "bitseq/internal/domain/types"

// BitSource yields independent, uniformly distributed digits.
// Implementations are not safe for concurrent use.
type BitSource interface {
	Bit() (types.Digit, error)
}
