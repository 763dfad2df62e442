package insight

import (
	"errors"
	"testing"
	"time"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// iv builds an interval on a fixed January night; hours are offsets from
// 2024-01-15 00:00 UTC, so 23.75 means 23:45 and 25.0 means 01:00 next day.
func iv(startHours, endHours float64, stage domain.SleepStage) domain.StageInterval {
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return domain.StageInterval{
		StartAt: base.Add(time.Duration(startHours * float64(time.Hour))),
		EndAt:   base.Add(time.Duration(endHours * float64(time.Hour))),
		Stage:   stage,
	}
}

func TestTotalAsleepDuration(t *testing.T) {
	tests := []struct {
		name      string
		intervals []domain.StageInterval
		want      time.Duration
	}{
		{
			name: "sums only asleep intervals",
			intervals: []domain.StageInterval{
				iv(23, 25, domain.StageAsleep),
				iv(25, 25.5, domain.StageAwake),
				iv(25.5, 31, domain.StageAsleep),
				iv(22.5, 23, domain.StageInBed),
			},
			want: 7*time.Hour + 30*time.Minute,
		},
		{
			name: "no asleep intervals",
			intervals: []domain.StageInterval{
				iv(23, 24, domain.StageInBed),
				iv(24, 24.5, domain.StageAwake),
			},
			want: 0,
		},
		{name: "empty", intervals: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalAsleepDuration(tt.intervals); got != tt.want {
				t.Errorf("TotalAsleepDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBedtime(t *testing.T) {
	fallback := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	t.Run("earliest asleep interval wins even when unsorted", func(t *testing.T) {
		intervals := []domain.StageInterval{
			iv(25.5, 31, domain.StageAsleep),
			iv(22.5, 23, domain.StageInBed),
			iv(23.25, 25, domain.StageAsleep),
		}
		want := iv(23.25, 25, domain.StageAsleep).StartAt
		if got := ExtractBedtime(intervals, fallback); !got.Equal(want) {
			t.Errorf("ExtractBedtime() = %v, want %v", got, want)
		}
	})

	t.Run("falls back to earliest interval of any stage", func(t *testing.T) {
		intervals := []domain.StageInterval{
			iv(23.5, 24, domain.StageAwake),
			iv(22.5, 23, domain.StageInBed),
		}
		want := iv(22.5, 23, domain.StageInBed).StartAt
		if got := ExtractBedtime(intervals, fallback); !got.Equal(want) {
			t.Errorf("ExtractBedtime() = %v, want %v", got, want)
		}
	})

	t.Run("empty list uses the degenerate fallback", func(t *testing.T) {
		if got := ExtractBedtime(nil, fallback); !got.Equal(fallback) {
			t.Errorf("ExtractBedtime() = %v, want fallback %v", got, fallback)
		}
	})
}

func TestCountInterruptions(t *testing.T) {
	tests := []struct {
		name      string
		intervals []domain.StageInterval
		want      int
	}{
		{
			name: "alternating asleep-awake ending awake",
			intervals: []domain.StageInterval{
				iv(23, 24, domain.StageAsleep),
				iv(24, 24.25, domain.StageAwake),
				iv(24.25, 26, domain.StageAsleep),
				iv(26, 26.25, domain.StageAwake),
			},
			want: 2,
		},
		{
			name: "ambiguous in-bed transitions do not count",
			intervals: []domain.StageInterval{
				iv(23, 24, domain.StageAsleep),
				iv(24, 24.25, domain.StageInBed),
				iv(24.25, 26, domain.StageAsleep),
				iv(26, 26.25, domain.StageAwake),
			},
			want: 1,
		},
		{
			name: "awake before any sleep does not count",
			intervals: []domain.StageInterval{
				iv(22.5, 23, domain.StageAwake),
				iv(23, 26, domain.StageAsleep),
			},
			want: 0,
		},
		{
			name: "unsorted input is walked in start order",
			intervals: []domain.StageInterval{
				iv(26, 26.25, domain.StageAwake),
				iv(23, 24, domain.StageAsleep),
				iv(24.25, 26, domain.StageAsleep),
				iv(24, 24.25, domain.StageAwake),
			},
			want: 2,
		},
		{name: "empty", intervals: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountInterruptions(tt.intervals); got != tt.want {
				t.Errorf("CountInterruptions() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDurationScore(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{8.0, 50},
		{7.0, 45},
		{9.0, 45},
		{8.5, 47},
		{7.5, 47},
		{6.0, 30},
		{6.5, 37},
		{9.5, 37},
		{10.0, 30},
		{5.0, 25},
		{5.4, 27},
		{0.0, 0},
		{11.0, 20},
		{15.0, 0},
		{24.0, 0},
	}

	for _, tt := range tests {
		if got := DurationScore(tt.hours); got != tt.want {
			t.Errorf("DurationScore(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestDurationScoreOptimalBand(t *testing.T) {
	// Everything in the 7-9h band stays within 45-50, peaking only at 8h.
	for hours := 7.0; hours <= 9.0; hours += 0.05 {
		got := DurationScore(hours)
		if got < 45 || got > 50 {
			t.Fatalf("DurationScore(%v) = %d, outside [45,50]", hours, got)
		}
	}
	if DurationScore(8.0) != 50 {
		t.Errorf("DurationScore(8.0) = %d, want peak 50", DurationScore(8.0))
	}
}

func TestBedtimeConsistencyScore(t *testing.T) {
	baseline := domain.WeeklyBaseline{MedianBedtimeHours: 22.5, SampleDays: 7}

	tests := []struct {
		name         string
		bedtimeHours float64
		baseline     domain.WeeklyBaseline
		want         int
	}{
		{"no baseline gives full credit", 3.0, domain.WeeklyBaseline{}, 30},
		{"exact match", 22.5, baseline, 30},
		{"within 30 minutes", 23.0, baseline, 30},
		{"within 60 minutes", 23.5, baseline, 25},
		{"within 120 minutes", 24.0 - 0.25, baseline, 20}, // 23:45, 75 min off
		{"beyond 120 minutes", 2.0, baseline, 10},
		{
			// 23:50 vs a 00:10 median is 20 circular minutes, not 1180.
			name:         "circular midnight crossing",
			bedtimeHours: 23.0 + 50.0/60.0,
			baseline:     domain.WeeklyBaseline{MedianBedtimeHours: 10.0 / 60.0, SampleDays: 5},
			want:         30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BedtimeConsistencyScore(tt.bedtimeHours, tt.baseline); got != tt.want {
				t.Errorf("BedtimeConsistencyScore(%v) = %d, want %d", tt.bedtimeHours, got, tt.want)
			}
		})
	}
}

func TestInterruptionsScore(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 20}, {1, 18}, {2, 16}, {3, 14}, {4, 12}, {5, 10},
		{6, 8}, {7, 6}, {10, 0}, {1000, 0},
	}

	for _, tt := range tests {
		if got := InterruptionsScore(tt.count); got != tt.want {
			t.Errorf("InterruptionsScore(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		d, b, i int
		want    int
	}{
		{50, 30, 20, 100},
		{0, 0, 0, 0},
		{50, 30, 18, 98}, // raw 37.6 -> 98.9 truncated
		{27, 30, 4, 61},  // raw 23.3 -> 61.3 truncated
	}

	for _, tt := range tests {
		if got := WeightedScore(tt.d, tt.b, tt.i); got != tt.want {
			t.Errorf("WeightedScore(%d,%d,%d) = %d, want %d", tt.d, tt.b, tt.i, got, tt.want)
		}
	}
}

func TestAnalyzeNightNoData(t *testing.T) {
	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	intervals := []domain.StageInterval{
		iv(23, 24, domain.StageInBed),
		iv(24, 24.5, domain.StageAwake),
	}

	_, err := AnalyzeNight(intervals, date, time.UTC, domain.WeeklyBaseline{}, now)
	if !errors.Is(err, domain.ErrNoSleepData) {
		t.Fatalf("AnalyzeNight() error = %v, want ErrNoSleepData", err)
	}

	if _, err := AnalyzeNight(nil, date, time.UTC, domain.WeeklyBaseline{}, now); !errors.Is(err, domain.ErrNoSleepData) {
		t.Fatalf("AnalyzeNight(empty) error = %v, want ErrNoSleepData", err)
	}
}

func TestAnalyzeNightRoughNight(t *testing.T) {
	// 5h24m asleep, bedtime 23:45, 8 wake events, no history.
	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	now := date.Add(12 * time.Hour)

	var intervals []domain.StageInterval
	start := 23.75
	for i := 0; i < 8; i++ {
		intervals = append(intervals, iv(start, start+0.675, domain.StageAsleep))
		intervals = append(intervals, iv(start+0.675, start+0.775, domain.StageAwake))
		start += 0.775
	}

	score, err := AnalyzeNight(intervals, date, time.UTC, ComputeBaseline(nil), now)
	if err != nil {
		t.Fatalf("AnalyzeNight() error = %v", err)
	}

	if score.InterruptionCount != 8 {
		t.Errorf("InterruptionCount = %d, want 8", score.InterruptionCount)
	}
	if score.BedtimeHour != 23 || score.BedtimeMinute != 45 {
		t.Errorf("bedtime = %d:%d, want 23:45", score.BedtimeHour, score.BedtimeMinute)
	}
	if score.DurationScore != 27 {
		t.Errorf("DurationScore = %d, want 27 (5.4h * 5)", score.DurationScore)
	}
	if score.BedtimeScore != 30 {
		t.Errorf("BedtimeScore = %d, want 30 with empty baseline", score.BedtimeScore)
	}
	if score.InterruptionsScore != 4 {
		t.Errorf("InterruptionsScore = %d, want 4", score.InterruptionsScore)
	}
	if score.TotalScore != 61 {
		t.Errorf("TotalScore = %d, want 61", score.TotalScore)
	}
}

func TestAnalyzeNightSolidNight(t *testing.T) {
	// 8h asleep split by one brief wake, bedtime 22:00 matching the baseline
	// median exactly.
	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	now := date.Add(12 * time.Hour)

	intervals := []domain.StageInterval{
		iv(22, 26, domain.StageAsleep),
		iv(26, 26.25, domain.StageAwake),
		iv(26.25, 30.25, domain.StageAsleep),
	}

	history := historyOf(7, 7.5, 22, 0, 3)
	score, err := AnalyzeNight(intervals, date, time.UTC, ComputeBaseline(history), now)
	if err != nil {
		t.Fatalf("AnalyzeNight() error = %v", err)
	}

	if score.DurationScore != 50 {
		t.Errorf("DurationScore = %d, want 50", score.DurationScore)
	}
	if score.BedtimeScore != 30 {
		t.Errorf("BedtimeScore = %d, want 30", score.BedtimeScore)
	}
	if score.InterruptionsScore != 18 {
		t.Errorf("InterruptionsScore = %d, want 18", score.InterruptionsScore)
	}
	if score.WeightedScore != 98 {
		t.Errorf("WeightedScore = %d, want 98", score.WeightedScore)
	}
}

func TestAnalyzeNightLocalizedBedtime(t *testing.T) {
	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	now := date.Add(12 * time.Hour)
	prague, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 22:00 UTC is 23:00 in Prague during winter.
	intervals := []domain.StageInterval{iv(22, 30, domain.StageAsleep)}
	score, err := AnalyzeNight(intervals, date, prague, domain.WeeklyBaseline{}, now)
	if err != nil {
		t.Fatalf("AnalyzeNight() error = %v", err)
	}
	if score.BedtimeHour != 23 {
		t.Errorf("BedtimeHour = %d, want 23 in local time", score.BedtimeHour)
	}
}
