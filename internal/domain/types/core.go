package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntropySourceUnavailable = errors.New("entropy source unavailable")
	ErrInvalidDigit             = errors.New("invalid binary digit")
	ErrInvalidLength            = errors.New("invalid sequence length")
	ErrUnknownFormat            = errors.New("unknown output format")
	ErrUnknownSource            = errors.New("unknown bit source")
)

// Length is the number of digits in every Sequence.
const Length = 128

// Digit is a single coin-flip outcome, 0 or 1.
type Digit uint8

const (
	Zero Digit = 0
	One  Digit = 1
)

// Char returns the ASCII form of the digit.
func (d Digit) Char() byte { return '0' + byte(d) }

// Sequence is a fixed-length run of digits in generation order.
type Sequence [Length]Digit

// String renders the sequence as 128 characters of '0' and '1'.
func (s Sequence) String() string {
	var b [Length]byte
	for i, d := range s {
		b[i] = d.Char()
	}
	return string(b[:])
}

// Bits returns the digits as a slice.
func (s Sequence) Bits() []Digit { return s[:] }

// ParseSequence parses exactly Length characters of '0' and '1'.
func ParseSequence(s string) (Sequence, error) {
	var seq Sequence
	if len(s) != Length {
		return seq, fmt.Errorf("%w: got %d, want %d", ErrInvalidLength, len(s), Length)
	}
	bits, err := ParseBits(s)
	if err != nil {
		return seq, err
	}
	copy(seq[:], bits)
	return seq, nil
}

// ParseBits parses a string of '0' and '1' of any length.
func ParseBits(s string) ([]Digit, error) {
	out := make([]Digit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = Zero
		case '1':
			out[i] = One
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidDigit, s[i], i)
		}
	}
	return out, nil
}

// Format selects how a sequence is printed.
type Format string

const (
	FormatLabelled Format = "labelled"
	FormatBare     Format = "bare"
)

// Label prefixes a sequence in the labelled format.
const Label = "Random sequence: "

// ParseFormat maps a flag value to a Format. The empty string selects the
// labelled default.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatLabelled:
		return FormatLabelled, nil
	case FormatBare:
		return FormatBare, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
