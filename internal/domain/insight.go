package domain

// InsightType names one rule in the fixed pattern catalog.
// @Description Detected sleep pattern type.
type InsightType string

const (
	InsightShortDuration       InsightType = "short_duration"
	InsightLongDuration        InsightType = "long_duration"
	InsightHighDisruption      InsightType = "high_disruption"
	InsightExcellentContinuity InsightType = "excellent_continuity"
	InsightIrregularBedtime    InsightType = "irregular_bedtime"
	InsightStrongConsistency   InsightType = "strong_consistency"
	InsightEarlierBedtime      InsightType = "earlier_bedtime"
	InsightLaterBedtime        InsightType = "later_bedtime"
	InsightBetterThanBaseline  InsightType = "better_than_baseline"
	InsightWorseThanBaseline   InsightType = "worse_than_baseline"
	InsightWeekdayWeekendShift InsightType = "weekday_weekend_shift"
	InsightHighRecovery        InsightType = "high_recovery"
	// InsightNoData is the sentinel type substituted when no pattern fires.
	InsightNoData InsightType = "no_data"
)

// PatternMatch is one triggered catalog rule with its computed strength.
// Transient; exists only within a single detection pass.
type PatternMatch struct {
	Type     InsightType
	Strength float64 // 0-100, clamped per rule
}

// WeeklyBaseline aggregates up to 7 prior days of scored history.
// Computed fresh per analysis call; holds no state.
type WeeklyBaseline struct {
	// AvgDurationHours is the mean asleep hours across the window.
	AvgDurationHours float64
	// MedianBedtimeHours is the median bedtime as hours from midnight (0-24).
	MedianBedtimeHours float64
	// AvgInterruptions is the mean wake-event count across the window.
	AvgInterruptions float64
	// SampleDays is the number of history days the baseline was built from.
	// Zero means the neutral fallback values are in effect.
	SampleDays int
}

// InsightItem is one composed natural-language insight.
// @Description Ranked insight with explanation, action plan, and trend note.
type InsightItem struct {
	// Pattern type this insight was derived from
	Type InsightType `json:"type" example:"high_recovery"`
	// Fixed per-pattern headline
	Title string `json:"title" example:"High-Quality Recovery Night"`
	// Templated, baseline-aware explanation
	Explanation string `json:"explanation"`
	// Concrete recommendation; only the rank-1 insight gets a real plan
	ActionPlan string `json:"action_plan"`
	// 1-based rank, 1 = strongest pattern
	Priority int `json:"priority" example:"1"`
	// Short history-derived trend statement
	TrendNote string `json:"trend_note" example:"Trend: Excellent recovery pattern maintained."`
}

// ReadinessScore grades the day ahead on a 1-10 scale derived from the
// night's total score.
// @Description Daytime readiness derived from last night's sleep.
type ReadinessScore struct {
	// Readiness on a 1-10 scale
	Score int `json:"score" example:"8"`
	// Band label, e.g. "High Readiness"
	Category string `json:"category" example:"High Readiness"`
	// One-line guidance for the band
	Description string `json:"description"`
	// Short call to action
	Advice string `json:"advice" example:"Strong day ahead"`
}

// TipPriority grades how urgently a daily tip should be surfaced.
type TipPriority string

const (
	TipPriorityCritical TipPriority = "critical"
	TipPriorityHigh     TipPriority = "high"
	TipPriorityMedium   TipPriority = "medium"
)

// DailyTip is one actionable recommendation keyed to the night's weakest
// component.
// @Description Actionable tip targeting the weakest score component.
type DailyTip struct {
	Title      string         `json:"title" example:"Extend Your Sleep Window"`
	Message    string         `json:"message"`
	ActionItem string         `json:"action_item"`
	Component  SleepComponent `json:"component" example:"duration"`
	Priority   TipPriority    `json:"priority" example:"high"`
}

// AnalysisResponse is the response for the nightly analysis endpoint.
// @Description Sleep score, ranked insights, readiness, and daily tip for one sleep day.
type AnalysisResponse struct {
	// Sleep day that was analyzed
	Date string `json:"date" example:"2024-01-16"`
	// Scored night; null when no qualifying intervals exist for the day
	Score *SleepScoreResponse `json:"score"`
	// Ranked insights (1-3 items; a single "Not Enough Data" item when score is null)
	Insights []InsightItem `json:"insights"`
	// Readiness derived from the score; omitted when score is null
	Readiness *ReadinessScore `json:"readiness,omitempty"`
	// Tip targeting the weakest component; omitted when score is null
	DailyTip *DailyTip `json:"daily_tip,omitempty"`
}
