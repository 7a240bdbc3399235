package randtest

import (
	"errors"

	"github.com/sirupsen/logrus"

	"bitseq/internal/domain"
)

// Analyzer runs every test with fixed Maurer parameters.
type Analyzer struct {
	L, Q int
	Log  logrus.FieldLogger
}

var _ domain.Analyzer = Analyzer{}

// Run computes the full result for one bit string. Invalid Maurer parameters
// are logged and leave Result.Maurer nil; any other failure aborts.
func (a Analyzer) Run(label string, bits []domain.Digit) (domain.TestResult, error) {
	res := domain.TestResult{Label: label, Frequency: Frequency(bits)}

	var err error
	if res.Serial, err = Serial(bits); err != nil {
		return domain.TestResult{}, err
	}
	if res.CumulativeSums, err = CumulativeSums(bits); err != nil {
		return domain.TestResult{}, err
	}

	p, err := MaurerUniversal(bits, a.L, a.Q)
	switch {
	case err == nil:
		res.Maurer = &p
	case errors.Is(err, ErrInvalidParameters):
		if a.Log != nil {
			a.Log.WithFields(logrus.Fields{"service": "randtest", "label": label}).Error(err)
		}
	default:
		return domain.TestResult{}, err
	}
	return res, nil
}
