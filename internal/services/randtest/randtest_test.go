package randtest_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"bitseq/internal/domain"
	"bitseq/internal/services/randtest"
)

func bits(t *testing.T, s string) []domain.Digit {
	t.Helper()
	b, err := domain.ParseBits(s)
	require.NoError(t, err)
	return b
}

func TestSerial_Alternating(t *testing.T) {
	p, err := randtest.Serial(bits(t, strings.Repeat("01", 64)))
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-12)
}

func TestSerial_Runs(t *testing.T) {
	// 00001111: n00 = 3, n11 = 3.
	p, err := randtest.Serial(bits(t, "00001111"))
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-12)

	// 00011111: n00 = 2, n11 = 4, ones = 5, zeros = 3.
	p, err = randtest.Serial(bits(t, "00011111"))
	require.NoError(t, err)
	require.InDelta(t, math.Erfc(2/math.Sqrt(30)), p, 1e-12)
}

func TestSerial_Degenerate(t *testing.T) {
	_, err := randtest.Serial(bits(t, strings.Repeat("1", 128)))
	require.ErrorIs(t, err, randtest.ErrDegenerate)
}

func TestCumulativeSums_AllOnes(t *testing.T) {
	p, err := randtest.CumulativeSums(bits(t, strings.Repeat("1", 128)))
	require.NoError(t, err)
	n := 128.0
	want := math.Erfc(128 / math.Sqrt(n*(n+1)*(2*n+1)/6))
	require.InDelta(t, want, p, 1e-12)
}

func TestCumulativeSums_Empty(t *testing.T) {
	_, err := randtest.CumulativeSums(nil)
	require.ErrorIs(t, err, randtest.ErrDegenerate)
}

func TestMaurerUniversal(t *testing.T) {
	in := bits(t, strings.Repeat("0110", 32))
	p, err := randtest.MaurerUniversal(in, 8, 4)
	require.NoError(t, err)
	// Every stride visits a single block, so v = 1.
	want := math.Erfc(0.3 * math.Sqrt(4+1.4) / math.Sqrt2)
	require.InDelta(t, want, p, 1e-12)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestMaurerUniversal_InvalidParameters(t *testing.T) {
	in := bits(t, strings.Repeat("01", 8))
	for _, tc := range []struct{ l, q int }{{8, 4}, {1, 1}, {0, 4}} {
		_, err := randtest.MaurerUniversal(in, tc.l, tc.q)
		require.ErrorIs(t, err, randtest.ErrInvalidParameters, "L=%d Q=%d", tc.l, tc.q)
	}
}

func TestFrequency(t *testing.T) {
	require.InDelta(t, 0.5, randtest.Frequency(bits(t, strings.Repeat("10", 64))), 1e-12)
	require.InDelta(t, 0.25, randtest.Frequency(bits(t, "1000")), 1e-12)
	require.Zero(t, randtest.Frequency(nil))
}

func TestAnalyzer_Run(t *testing.T) {
	a := randtest.Analyzer{L: 8, Q: 4}
	res, err := a.Run("cpp", bits(t, strings.Repeat("0110", 32)))
	require.NoError(t, err)
	require.Equal(t, "cpp", res.Label)
	require.NotNil(t, res.Maurer)
	require.InDelta(t, 0.5, res.Frequency, 1e-12)
}

func TestAnalyzer_Run_MaurerSkipped(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	a := randtest.Analyzer{L: 64, Q: 64, Log: log}
	res, err := a.Run("java", bits(t, strings.Repeat("0110", 32)))
	require.NoError(t, err)
	require.Nil(t, res.Maurer)
	require.Contains(t, buf.String(), "invalid test parameters")
}

func TestAnalyzer_Run_Degenerate(t *testing.T) {
	_, err := randtest.Analyzer{L: 8, Q: 4}.Run("ones", bits(t, strings.Repeat("1", 128)))
	require.ErrorIs(t, err, randtest.ErrDegenerate)
}
