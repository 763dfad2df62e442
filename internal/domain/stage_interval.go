package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SleepStage classifies one observed interval of the night.
// @Description Sleep stage: ASLEEP for any asleep phase, AWAKE for explicit wake periods, IN_BED for in-bed-but-not-asleep or unspecified intervals.
type SleepStage string

const (
	// StageAsleep covers every asleep variant a wearable reports (core, deep, REM, unspecified asleep).
	StageAsleep SleepStage = "ASLEEP"
	// StageAwake is an explicit wake period during the night.
	StageAwake SleepStage = "AWAKE"
	// StageInBed is time in bed without confirmed sleep, or an unspecified reading.
	StageInBed SleepStage = "IN_BED"
)

// IsAsleep reports whether the stage counts toward sleep duration.
func (s SleepStage) IsAsleep() bool {
	return s == StageAsleep
}

// StageInterval is one timestamped sleep-stage observation supplied by the
// acquisition layer. Intervals arrive in no guaranteed order.
type StageInterval struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_stage_intervals_user_start" json:"user_id"`
	StartAt   time.Time  `gorm:"not null;index:idx_stage_intervals_user_start,sort:desc" json:"start_at"`
	EndAt     time.Time  `gorm:"not null" json:"end_at"`
	Stage     SleepStage `gorm:"type:varchar(10);not null" json:"stage"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StageInterval) TableName() string {
	return "stage_intervals"
}

// SortIntervals orders intervals ascending by start time, in place.
// The engine requires this before any walk over the night.
func SortIntervals(intervals []StageInterval) {
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].StartAt.Before(intervals[j].StartAt)
	})
}

// StageIntervalInput is one interval within a batch ingest request.
// @Description A single sleep-stage observation.
type StageIntervalInput struct {
	// Interval start in RFC3339 format
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-15T23:05:00Z"`
	// Interval end in RFC3339 format (must be after start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T01:40:00Z"`
	// Observed stage
	Stage SleepStage `json:"stage" validate:"required,oneof=ASLEEP AWAKE IN_BED" example:"ASLEEP" enums:"ASLEEP,AWAKE,IN_BED"`
}

// CreateIntervalsRequest is the request body for batch interval ingest.
// @Description Batch of sleep-stage observations for one user.
type CreateIntervalsRequest struct {
	// Observations, in any order (1-500 per request)
	Intervals []StageIntervalInput `json:"intervals" validate:"required,min=1,max=500,dive"`
}

// StageIntervalResponse is the response body for interval endpoints.
// @Description Stored sleep-stage observation.
type StageIntervalResponse struct {
	ID      uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID  uuid.UUID  `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	StartAt time.Time  `json:"start_at" example:"2024-01-15T23:05:00Z"`
	EndAt   time.Time  `json:"end_at" example:"2024-01-16T01:40:00Z"`
	Stage   SleepStage `json:"stage" example:"ASLEEP"`
}

func (i *StageInterval) ToResponse() StageIntervalResponse {
	return StageIntervalResponse{
		ID:      i.ID,
		UserID:  i.UserID,
		StartAt: i.StartAt,
		EndAt:   i.EndAt,
		Stage:   i.Stage,
	}
}

// IntervalListResponse is the response body for listing intervals.
// @Description Paginated list of sleep-stage observations.
type IntervalListResponse struct {
	// Array of stored observations
	Data []StageIntervalResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// IntervalFilter contains filter parameters for listing intervals
type IntervalFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
