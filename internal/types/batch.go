package types

// FileResult is the per-file outcome of a batch screening run. Exactly one of
// Analysis or Error is populated, keyed by Success.
type FileResult struct {
	FileName string            `json:"fileName"`
	Success  bool              `json:"success"`
	Resume   *ParsedResume     `json:"resume,omitempty"`
	Analysis *EnhancedAnalysis `json:"analysis,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// BatchReport aggregates a batch run: per-file results plus counts.
// Results are ordered successes-first by descending overall score, then
// failures, ties broken by submission order.
type BatchReport struct {
	TotalProcessed int          `json:"totalProcessed"`
	Successful     int          `json:"successful"`
	Failed         int          `json:"failed"`
	Results        []FileResult `json:"results"`
}
