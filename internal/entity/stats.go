package entity

// ErrorCount pairs an error message with its occurrence count.
type ErrorCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ProcessingStats aggregates job outcomes for reporting.
type ProcessingStats struct {
	TotalJobs     int          `json:"total_jobs"`
	Completed     int          `json:"completed"`
	Failed        int          `json:"failed"`
	SuccessRate   float64      `json:"success_rate"`
	AvgConfidence float64      `json:"avg_confidence"`
	TopErrors     []ErrorCount `json:"top_errors"`
}
