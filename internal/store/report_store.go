package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"bitseq/internal/domain"
)

const reportMode = 0o644

// ReportFileStore reads analysis inputs from and writes reports to the local
// filesystem.
type ReportFileStore struct {
	mu sync.Mutex
}

var _ domain.ReportStore = (*ReportFileStore)(nil)

func NewReportFileStore() *ReportFileStore { return &ReportFileStore{} }

// LoadSettings reads the settings document. Both paths are required.
func (s *ReportFileStore) LoadSettings(path string) (domain.TestSettings, error) {
	var out domain.TestSettings
	if err := readJSON(path, &out); err != nil {
		return domain.TestSettings{}, err
	}
	if out.InputPath == "" {
		return domain.TestSettings{}, fmt.Errorf("%s: path_input missing", path)
	}
	if out.OutputPath == "" {
		return domain.TestSettings{}, fmt.Errorf("%s: path_output missing", path)
	}
	return out, nil
}

// LoadSequences reads a JSON object of label -> bit string.
func (s *ReportFileStore) LoadSequences(path string) (map[string][]domain.Digit, error) {
	var raw map[string]string
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}
	out := make(map[string][]domain.Digit, len(raw))
	for label, bits := range raw {
		d, err := domain.ParseBits(bits)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", label, err)
		}
		out[label] = d
	}
	return out, nil
}

// WriteReport renders results sorted by label and replaces the file at path.
func (s *ReportFileStore) WriteReport(path string, results []domain.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := append([]domain.TestResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })

	var b strings.Builder
	for _, r := range sorted {
		maurer := "None"
		if r.Maurer != nil {
			maurer = formatFloat(*r.Maurer)
		}
		fmt.Fprintf(&b, "Results (%s)\n", r.Label)
		fmt.Fprintf(&b, "Serial Test: %s\n", formatFloat(r.Serial))
		fmt.Fprintf(&b, "Maurer's Universal Statistical Test: %s\n", maurer)
		fmt.Fprintf(&b, "Cumulative Sums Test: %s\n", formatFloat(r.CumulativeSums))
		fmt.Fprintf(&b, "Frequency: %s\n\n", formatFloat(r.Frequency))
	}
	return writeFile(path, []byte(b.String()), reportMode)
}

// formatFloat prints the shortest representation, always with a fractional
// part or exponent so p-values read as floats.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
