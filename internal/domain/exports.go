package domain

import (
	interfaces "bitseq/internal/domain/interfaces"
	types "bitseq/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Digit        = types.Digit
	Sequence     = types.Sequence
	Format       = types.Format
	TestSettings = types.TestSettings
	TestResult   = types.TestResult
)

// Interface aliases expose contracts from the interfaces subpackage.
type (
	BitSource         = interfaces.BitSource
	SequenceGenerator = interfaces.SequenceGenerator
	Analyzer          = interfaces.Analyzer
	ReportStore       = interfaces.ReportStore
)

// Length is the number of digits in every Sequence.
const Length = types.Length

const (
	Zero = types.Zero
	One  = types.One
)

const (
	FormatLabelled = types.FormatLabelled
	FormatBare     = types.FormatBare
)

// Label prefixes a sequence in the labelled output format.
const Label = types.Label

var (
	ParseSequence = types.ParseSequence
	ParseBits     = types.ParseBits
	ParseFormat   = types.ParseFormat
)
