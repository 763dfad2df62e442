package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Component score maxima. The three components sum to a 0-100 scale.
const (
	MaxDurationScore      = 50
	MaxBedtimeScore       = 30
	MaxInterruptionsScore = 20
)

// SleepComponent identifies one of the three scored aspects of a night.
type SleepComponent string

const (
	ComponentDuration      SleepComponent = "duration"
	ComponentBedtime       SleepComponent = "bedtime"
	ComponentInterruptions SleepComponent = "interruptions"
)

// DisplayName returns the human-readable component name.
func (c SleepComponent) DisplayName() string {
	switch c {
	case ComponentBedtime:
		return "Bedtime Consistency"
	case ComponentInterruptions:
		return "Sleep Interruptions"
	default:
		return "Duration"
	}
}

// MaxScore returns the component's score ceiling.
func (c SleepComponent) MaxScore() int {
	switch c {
	case ComponentBedtime:
		return MaxBedtimeScore
	case ComponentInterruptions:
		return MaxInterruptionsScore
	default:
		return MaxDurationScore
	}
}

// SleepScore is the scored record for one sleep day. A re-analysis of the
// same date produces a fresh row; rows are never mutated in place.
type SleepScore struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_scores_user_date" json:"user_id"`
	// Date is the sleep day this score belongs to, truncated to midnight UTC.
	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_sleep_scores_user_date" json:"date"`

	DurationScore      int `gorm:"type:smallint;not null" json:"duration_score"`
	BedtimeScore       int `gorm:"type:smallint;not null" json:"bedtime_score"`
	InterruptionsScore int `gorm:"type:smallint;not null" json:"interruptions_score"`
	// TotalScore is the direct sum of the three components (0-100).
	TotalScore int `gorm:"type:smallint;not null" json:"total_score"`
	// WeightedScore is the normalized weighted score (0-100).
	WeightedScore int `gorm:"type:smallint;not null" json:"weighted_score"`

	TotalSleepHours   float64 `gorm:"not null" json:"total_sleep_hours"`
	BedtimeHour       int     `gorm:"type:smallint;not null" json:"bedtime_hour"`
	BedtimeMinute     int     `gorm:"type:smallint;not null" json:"bedtime_minute"`
	InterruptionCount int     `gorm:"type:smallint;not null" json:"interruption_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepScore) TableName() string {
	return "sleep_scores"
}

// BedtimeHours expresses the bedtime as fractional hours on a 0-24 scale.
func (s *SleepScore) BedtimeHours() float64 {
	return float64(s.BedtimeHour) + float64(s.BedtimeMinute)/60.0
}

// DurationPercentage is the duration score as a fraction of its maximum.
func (s *SleepScore) DurationPercentage() float64 {
	return float64(s.DurationScore) / float64(MaxDurationScore)
}

// BedtimePercentage is the bedtime score as a fraction of its maximum.
func (s *SleepScore) BedtimePercentage() float64 {
	return float64(s.BedtimeScore) / float64(MaxBedtimeScore)
}

// InterruptionsPercentage is the interruptions score as a fraction of its maximum.
func (s *SleepScore) InterruptionsPercentage() float64 {
	return float64(s.InterruptionsScore) / float64(MaxInterruptionsScore)
}

// LowestComponent returns the component with the weakest relative score.
func (s *SleepScore) LowestComponent() SleepComponent {
	lowest := ComponentDuration
	best := s.DurationPercentage()
	if p := s.BedtimePercentage(); p < best {
		lowest, best = ComponentBedtime, p
	}
	if p := s.InterruptionsPercentage(); p < best {
		lowest = ComponentInterruptions
	}
	return lowest
}

// HighestComponent returns the component with the strongest relative score.
func (s *SleepScore) HighestComponent() SleepComponent {
	highest := ComponentDuration
	best := s.DurationPercentage()
	if p := s.BedtimePercentage(); p > best {
		highest, best = ComponentBedtime, p
	}
	if p := s.InterruptionsPercentage(); p > best {
		highest = ComponentInterruptions
	}
	return highest
}

// FormattedBedtime renders the bedtime as a 12-hour clock string, e.g. "10:45 PM".
func (s *SleepScore) FormattedBedtime() string {
	period := "AM"
	if s.BedtimeHour >= 12 {
		period = "PM"
	}
	displayHour := s.BedtimeHour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, s.BedtimeMinute, period)
}

// FormattedDuration renders the asleep time as "7h 30m".
func (s *SleepScore) FormattedDuration() string {
	return FormatHours(s.TotalSleepHours)
}

// FormatHours renders fractional hours as "7h 30m".
func FormatHours(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %dm", h, m)
}

// SleepScoreResponse is the response body for score endpoints.
// @Description Scored sleep day with component breakdown and raw metrics.
type SleepScoreResponse struct {
	// Sleep day (date only)
	Date string `json:"date" example:"2024-01-16"`
	// Duration component score (0-50)
	DurationScore int `json:"duration_score" example:"47"`
	// Bedtime consistency component score (0-30)
	BedtimeScore int `json:"bedtime_score" example:"30"`
	// Interruptions component score (0-20)
	InterruptionsScore int `json:"interruptions_score" example:"18"`
	// Direct sum of the three components (0-100)
	TotalScore int `json:"total_score" example:"95"`
	// Weighted, normalized score (0-100)
	WeightedScore int `json:"weighted_score" example:"97"`
	// Hours asleep
	TotalSleepHours float64 `json:"total_sleep_hours" example:"7.5"`
	// Bedtime rendered on a 12-hour clock
	Bedtime string `json:"bedtime" example:"10:45 PM"`
	// Asleep duration rendered as hours and minutes
	Duration string `json:"duration" example:"7h 30m"`
	// Number of wake events detected
	InterruptionCount int `json:"interruption_count" example:"1"`
}

func (s *SleepScore) ToResponse() SleepScoreResponse {
	return SleepScoreResponse{
		Date:               s.Date.Format("2006-01-02"),
		DurationScore:      s.DurationScore,
		BedtimeScore:       s.BedtimeScore,
		InterruptionsScore: s.InterruptionsScore,
		TotalScore:         s.TotalScore,
		WeightedScore:      s.WeightedScore,
		TotalSleepHours:    s.TotalSleepHours,
		Bedtime:            s.FormattedBedtime(),
		Duration:           s.FormattedDuration(),
		InterruptionCount:  s.InterruptionCount,
	}
}

// ScoreHistoryResponse is the response body for the score history endpoint.
// @Description Stored sleep scores, oldest first.
type ScoreHistoryResponse struct {
	Data []SleepScoreResponse `json:"data"`
}
