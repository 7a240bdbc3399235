package types

// TestSettings mirrors the JSON settings document of the analysis harness.
type TestSettings struct {
	InputPath  string `json:"path_input"`
	OutputPath string `json:"path_output"`
	L          int    `json:"L"`
	Q          int    `json:"Q"`
}

// TestResult holds the p-values computed for one labelled bit string.
type TestResult struct {
	Label          string
	Serial         float64
	Maurer         *float64 // nil when L and Q do not fit the input
	CumulativeSums float64
	Frequency      float64
}
