package interfaces

import types "bitseq/internal/domain/types"

// ReportStore reads analysis inputs and persists reports.
type ReportStore interface {
	LoadSettings(path string) (types.TestSettings, error)
	LoadSequences(path string) (map[string][]types.Digit, error)
	WriteReport(path string, results []types.TestResult) error
}
