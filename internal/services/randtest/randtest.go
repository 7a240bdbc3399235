package randtest

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"bitseq/internal/domain"
)

var (
	// ErrDegenerate is returned when a statistic is undefined for the input,
	// e.g. a string with no zeros or no ones.
	ErrDegenerate = errors.New("statistic undefined for input")
	// ErrInvalidParameters is returned when L and Q do not fit the input.
	ErrInvalidParameters = errors.New("invalid test parameters")
)

// erfc is the complementary error function, expressed through the standard
// normal tail: erfc(x) = 2·P(Z > x·√2).
func erfc(x float64) float64 {
	return 2 * distuv.UnitNormal.Survival(x*math.Sqrt2)
}

func counts(bits []domain.Digit) (ones, zeros int) {
	for _, b := range bits {
		if b == domain.One {
			ones++
		}
	}
	return ones, len(bits) - ones
}

// Serial compares the number of overlapping "11" and "00" pairs.
func Serial(bits []domain.Digit) (float64, error) {
	ones, zeros := counts(bits)
	if ones == 0 || zeros == 0 {
		return 0, fmt.Errorf("serial: %w: %d ones, %d zeros", ErrDegenerate, ones, zeros)
	}
	var n11, n00 int
	for i := 0; i+1 < len(bits); i++ {
		switch {
		case bits[i] == domain.One && bits[i+1] == domain.One:
			n11++
		case bits[i] == domain.Zero && bits[i+1] == domain.Zero:
			n00++
		}
	}
	diff := math.Abs(float64(n11 - n00))
	return erfc(diff / math.Sqrt(2*float64(ones)*float64(zeros))), nil
}

// MaurerUniversal splits the first l·q bits into q blocks of l bits and
// counts, for every block position after the first, the distinct blocks seen
// at stride q.
func MaurerUniversal(bits []domain.Digit, l, q int) (float64, error) {
	n := len(bits)
	if l < 1 || q < 2 || l*q > n {
		return 0, fmt.Errorf("maurer: %w: L=%d Q=%d n=%d", ErrInvalidParameters, l, q, n)
	}
	k := n / q

	blocks := make([]string, 0, q)
	for i := 0; i < l*q; i += l {
		var b []byte
		for _, d := range bits[i : i+l] {
			b = append(b, d.Char())
		}
		blocks = append(blocks, string(b))
	}

	t := make([]int, q)
	for i := 1; i < q; i++ {
		seen := make(map[string]struct{})
		for j := 0; j < k; j++ {
			idx := i + j*q
			if idx >= len(blocks) {
				break
			}
			if _, ok := seen[blocks[idx]]; !ok {
				t[i]++
				seen[blocks[idx]] = struct{}{}
			}
		}
	}

	var sum int
	for _, v := range t[1:] {
		sum += v
	}
	vObs := float64(sum) / float64(q-1)
	lambda := (vObs - 0.7) * math.Sqrt(float64(q)+1.4)
	return erfc(math.Abs(lambda) / math.Sqrt2), nil
}

// CumulativeSums measures the maximal excursion of the ±1 random walk.
func CumulativeSums(bits []domain.Digit) (float64, error) {
	n := len(bits)
	if n == 0 {
		return 0, fmt.Errorf("cumulative sums: %w: empty input", ErrDegenerate)
	}
	var s, maxS, minS int
	for _, b := range bits {
		if b == domain.One {
			s++
		} else {
			s--
		}
		maxS = max(maxS, s)
		minS = min(minS, s)
	}
	z := math.Max(math.Abs(float64(maxS)), math.Abs(float64(minS)))
	nf := float64(n)
	return erfc(z / math.Sqrt(nf*(nf+1)*(2*nf+1)/6)), nil
}

// Frequency returns the proportion of ones.
func Frequency(bits []domain.Digit) float64 {
	if len(bits) == 0 {
		return 0
	}
	xs := make([]float64, len(bits))
	for i, b := range bits {
		xs[i] = float64(b)
	}
	return stat.Mean(xs, nil)
}
