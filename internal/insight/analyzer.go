// Package insight is the sleep metrics and insight-generation engine. Every
// function here is a pure, synchronous transformation over in-memory values:
// sample acquisition and persistence stay with the caller. The only
// nondeterminism is template selection in Composer, behind an injectable
// random source.
package insight

import (
	"math"
	"time"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// TotalAsleepDuration sums the length of every asleep-stage interval.
// Awake and in-bed intervals are excluded. Returns 0 when no asleep
// interval exists.
func TotalAsleepDuration(intervals []domain.StageInterval) time.Duration {
	var total time.Duration
	for _, iv := range intervals {
		if iv.Stage.IsAsleep() {
			total += iv.EndAt.Sub(iv.StartAt)
		}
	}
	return total
}

// ExtractBedtime returns the start of the earliest asleep interval. When no
// asleep interval exists it falls back to the earliest interval of any stage,
// and for an empty list to the supplied fallback time. Callers applying the
// no-data short-circuit first never reach the fallback branches.
func ExtractBedtime(intervals []domain.StageInterval, fallback time.Time) time.Time {
	if len(intervals) == 0 {
		return fallback
	}

	sorted := make([]domain.StageInterval, len(intervals))
	copy(sorted, intervals)
	domain.SortIntervals(sorted)

	for _, iv := range sorted {
		if iv.Stage.IsAsleep() {
			return iv.StartAt
		}
	}
	return sorted[0].StartAt
}

// CountInterruptions counts wake events: transitions from an asleep interval
// to an explicitly awake one, walking the night in start-time order. Moving
// from asleep into an ambiguous in-bed interval does not count.
func CountInterruptions(intervals []domain.StageInterval) int {
	sorted := make([]domain.StageInterval, len(intervals))
	copy(sorted, intervals)
	domain.SortIntervals(sorted)

	count := 0
	wasAsleep := false
	for _, iv := range sorted {
		if wasAsleep && iv.Stage == domain.StageAwake {
			count++
		}
		wasAsleep = iv.Stage.IsAsleep()
	}
	return count
}

// DurationScore maps asleep hours to the 0-50 duration component.
// The 7-9h band scores 45-50, peaking at 50 for exactly 8h; the 6-7h and
// 9-10h bands rise linearly from 30 toward the optimal band; outside those,
// the score decays toward 0.
func DurationScore(hours float64) int {
	var score float64
	switch {
	case hours >= 7.0 && hours <= 9.0:
		score = 50 - math.Abs(hours-8.0)*5
		if score < 45 {
			score = 45
		}
	case hours >= 6.0 && hours < 7.0:
		score = 30 + (hours-6.0)*14
	case hours > 9.0 && hours <= 10.0:
		score = 30 + (10.0-hours)*14
	case hours < 6.0:
		score = hours * 5
	default: // > 10h
		score = 25 - (hours-10.0)*5
	}
	return clampInt(int(score), 0, domain.MaxDurationScore)
}

// BedtimeConsistencyScore maps the circular distance between tonight's
// bedtime and the baseline median to the 0-30 consistency component.
// With no baseline samples there is nothing to penalize against, so the
// component scores full credit.
func BedtimeConsistencyScore(bedtimeHours float64, baseline domain.WeeklyBaseline) int {
	if baseline.SampleDays == 0 {
		return domain.MaxBedtimeScore
	}

	diff := bedtimeVarianceMinutes(bedtimeHours, baseline)
	switch {
	case diff <= 30:
		return 30
	case diff <= 60:
		return 25
	case diff <= 120:
		return 20
	default:
		return 10
	}
}

// interruptionsTable maps wake-event counts 0-5 to the component score.
var interruptionsTable = [6]int{20, 18, 16, 14, 12, 10}

// InterruptionsScore maps the wake-event count to the 0-20 interruptions
// component.
func InterruptionsScore(count int) int {
	if count < 0 {
		count = 0
	}
	if count <= 5 {
		return interruptionsTable[count]
	}
	score := 10 - (count-5)*2
	if score < 0 {
		return 0
	}
	return score
}

// maxWeightedRaw is the highest attainable weighted raw value
// (50*0.5 + 30*0.3 + 20*0.2), the normalization denominator.
const maxWeightedRaw = 38.0

// WeightedScore combines the three components into the normalized 0-100
// score. Duration weighs most, bedtime consistency next, interruptions least.
func WeightedScore(durationScore, bedtimeScore, interruptionsScore int) int {
	raw := float64(durationScore)*0.5 + float64(bedtimeScore)*0.3 + float64(interruptionsScore)*0.2
	return clampInt(int(raw/maxWeightedRaw*100.0), 0, 100)
}

// AnalyzeNight turns one sleep day's stage intervals into a scored record.
// The intervals may arrive unordered; date is the sleep day the score belongs
// to; loc localizes the bedtime; now backs the degenerate bedtime fallback.
// Returns domain.ErrNoSleepData when the day has no asleep intervals.
func AnalyzeNight(intervals []domain.StageInterval, date time.Time, loc *time.Location, baseline domain.WeeklyBaseline, now time.Time) (*domain.SleepScore, error) {
	asleep := TotalAsleepDuration(intervals)
	if asleep == 0 {
		return nil, domain.ErrNoSleepData
	}

	bedtime := ExtractBedtime(intervals, now).In(loc)
	hours := asleep.Hours()
	interruptions := CountInterruptions(intervals)
	bedtimeHours := float64(bedtime.Hour()) + float64(bedtime.Minute())/60.0

	durationScore := DurationScore(hours)
	bedtimeScore := BedtimeConsistencyScore(bedtimeHours, baseline)
	interruptionsScore := InterruptionsScore(interruptions)

	return &domain.SleepScore{
		Date:               time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		DurationScore:      durationScore,
		BedtimeScore:       bedtimeScore,
		InterruptionsScore: interruptionsScore,
		TotalScore:         durationScore + bedtimeScore + interruptionsScore,
		WeightedScore:      WeightedScore(durationScore, bedtimeScore, interruptionsScore),
		TotalSleepHours:    hours,
		BedtimeHour:        bedtime.Hour(),
		BedtimeMinute:      bedtime.Minute(),
		InterruptionCount:  interruptions,
	}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
