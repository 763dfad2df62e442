package domain

// SummaryContext is the context object sent to the LLM for the weekly summary.
// @Description Aggregated week of scored nights for narrative summarization.
type SummaryContext struct {
	// Baseline over the summarized window
	Baseline struct {
		AvgDurationHours   float64 `json:"avg_duration_hours" example:"7.2"`
		MedianBedtimeHours float64 `json:"median_bedtime_hours" example:"22.8"`
		AvgInterruptions   float64 `json:"avg_interruptions" example:"2.4"`
	} `json:"baseline"`
	// Per-night scored records, oldest first
	Nights []SleepScoreResponse `json:"nights"`
}

// WeeklySummary is the structured narrative output from the LLM.
// @Description LLM-composed narrative summary of the week's sleep.
type WeeklySummary struct {
	// Summary of the week (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep has been fairly consistent this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// SummaryResponse is the response for the weekly summary endpoint.
// @Description Weekly narrative summary with the data it was built from.
type SummaryResponse struct {
	// Number of scored nights the summary covers
	NightsUsed int `json:"nights_used" example:"7"`
	// The narrative summary
	Summary WeeklySummary `json:"summary"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
