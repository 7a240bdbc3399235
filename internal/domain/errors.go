package domain

import types "bitseq/internal/domain/types"

// ErrEntropySourceUnavailable is returned when the platform cannot supply
// seed material or random bytes. It is never retried.
var ErrEntropySourceUnavailable = types.ErrEntropySourceUnavailable

var (
	ErrInvalidDigit  = types.ErrInvalidDigit
	ErrInvalidLength = types.ErrInvalidLength
	ErrUnknownFormat = types.ErrUnknownFormat
	ErrUnknownSource = types.ErrUnknownSource
)
