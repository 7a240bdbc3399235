package interfaces

import types "bitseq/internal/domain/types"

// SequenceGenerator draws a fresh Sequence on every call.
type SequenceGenerator interface {
	Generate() (types.Sequence, error)
}

// Analyzer runs the statistical test battery over a labelled bit string.
type Analyzer interface {
	Run(label string, bits []types.Digit) (types.TestResult, error)
}
