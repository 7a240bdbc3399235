package sequence_test

import (
	"errors"
	"strings"
	"testing"

	"bitseq/internal/domain"
	"bitseq/internal/entropy"
	"bitseq/internal/services/sequence"
)

// constSource always returns the same digit.
type constSource domain.Digit

func (c constSource) Bit() (domain.Digit, error) { return domain.Digit(c), nil }

// alternatingSource returns 0, 1, 0, 1, ...
type alternatingSource struct{ next domain.Digit }

func (a *alternatingSource) Bit() (domain.Digit, error) {
	d := a.next
	a.next ^= 1
	return d, nil
}

// failingSource fails after n successful draws.
type failingSource struct{ n int }

func (f *failingSource) Bit() (domain.Digit, error) {
	if f.n == 0 {
		return 0, errors.New("device gone")
	}
	f.n--
	return domain.One, nil
}

func TestGenerate_AllOnes(t *testing.T) {
	seq, err := sequence.New(constSource(domain.One)).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got, want := seq.String(), strings.Repeat("1", domain.Length); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerate_Alternating(t *testing.T) {
	seq, err := sequence.New(&alternatingSource{}).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := seq.String()
	if want := strings.Repeat("01", domain.Length/2); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got[len(got)-1] != '1' {
		t.Fatal("alternating sequence must end in 1")
	}
}

func TestGenerate_MasksHighBits(t *testing.T) {
	seq, err := sequence.New(constSource(3)).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, d := range seq {
		if d != domain.One {
			t.Fatalf("digit %d = %d, want 1", i, d)
		}
	}
}

func TestGenerate_SourceFailure(t *testing.T) {
	seq, err := sequence.New(&failingSource{n: 10}).Generate()
	if !errors.Is(err, domain.ErrEntropySourceUnavailable) {
		t.Fatalf("want ErrEntropySourceUnavailable, got %v", err)
	}
	if seq != (domain.Sequence{}) {
		t.Fatal("partial sequence returned on failure")
	}
}

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	seed, err := entropy.NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	ks, err := entropy.NewKeystream(&seed)
	if err != nil {
		t.Fatalf("NewKeystream: %v", err)
	}
	svc := sequence.New(ks)
	for run := 0; run < 50; run++ {
		seq, err := svc.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		s := seq.String()
		if len(s) != domain.Length {
			t.Fatalf("run %d: length %d", run, len(s))
		}
		if strings.Trim(s, "01") != "" {
			t.Fatalf("run %d: unexpected characters in %q", run, s)
		}
	}
}

func TestGenerate_FreshGeneratorsDiffer(t *testing.T) {
	seen := make(map[string]bool)
	for run := 0; run < 10; run++ {
		seed, err := entropy.NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		ks, err := entropy.NewKeystream(&seed)
		if err != nil {
			t.Fatalf("NewKeystream: %v", err)
		}
		seq, err := sequence.New(ks).Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		s := seq.String()
		if seen[s] {
			t.Fatalf("run %d repeated an earlier sequence", run)
		}
		seen[s] = true
	}
}

func TestGenerate_AggregateFrequency(t *testing.T) {
	svc := sequence.New(entropy.NewSystem())
	var ones, total int
	for run := 0; run < 200; run++ {
		seq, err := svc.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for _, d := range seq {
			ones += int(d)
			total++
		}
	}
	ratio := float64(ones) / float64(total)
	if ratio < 0.45 || ratio > 0.55 {
		t.Fatalf("ones ratio %.4f outside 0.45..0.55", ratio)
	}
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	gen := func(seed string) string {
		s := entropy.DeriveSeed(seed)
		ks, err := entropy.NewKeystream(&s)
		if err != nil {
			t.Fatalf("NewKeystream: %v", err)
		}
		seq, err := sequence.New(ks).Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return seq.String()
	}
	if gen("abc") != gen("abc") {
		t.Fatal("same seed produced different sequences")
	}
	if gen("abc") == gen("abd") {
		t.Fatal("different seeds produced the same sequence")
	}
}

func TestRender(t *testing.T) {
	seq, err := sequence.New(constSource(domain.Zero)).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	bits := strings.Repeat("0", domain.Length)
	if got := sequence.Render(seq, domain.FormatBare); got != bits {
		t.Fatalf("bare: got %q", got)
	}
	labelled := sequence.Render(seq, domain.FormatLabelled)
	if labelled != "Random sequence: "+bits {
		t.Fatalf("labelled: got %q", labelled)
	}
	if labelled != sequence.Render(seq, domain.FormatLabelled) {
		t.Fatal("rendering is not deterministic")
	}
}
