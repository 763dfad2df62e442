package insight

import (
	"math"
	"sort"
	"time"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// Pattern trigger thresholds.
const (
	shortDurationHours     = 5.5
	longDurationHours      = 9.0
	highDisruptionCount    = 7
	continuityCount        = 2
	irregularBedtimeMin    = 45.0
	consistentBedtimeMin   = 15.0
	bedtimeShiftMin        = 40.0
	baselineDurationMin    = 40.0
	weekendShiftMin        = 60.0
	recoveryHours          = 7.5
	recoveryInterruptions  = 3
	weekendShiftMinHistory = 5
)

// MaxSelectedPatterns is how many top-ranked patterns become insights.
const MaxSelectedPatterns = 3

// DetectPatterns evaluates the fixed rule catalog against the night, its
// baseline, and the recent history. Rules are independent: several may fire
// at once. Matches are returned in catalog declaration order, which is the
// tie-break order for equal strengths.
func DetectPatterns(score *domain.SleepScore, history []domain.SleepScore, baseline domain.WeeklyBaseline) []domain.PatternMatch {
	var matches []domain.PatternMatch
	hours := score.TotalSleepHours
	interruptions := score.InterruptionCount
	bedtimeHours := score.BedtimeHours()

	if hours < shortDurationHours {
		severity := (shortDurationHours - hours) * 15
		matches = append(matches, match(domain.InsightShortDuration, 60+severity, 90))
	}

	if hours > longDurationHours {
		severity := (hours - longDurationHours) * 10
		matches = append(matches, match(domain.InsightLongDuration, 50+severity, 85))
	}

	if interruptions >= highDisruptionCount {
		severity := float64(interruptions-highDisruptionCount) * 5
		matches = append(matches, match(domain.InsightHighDisruption, 70+severity, 95))
	}

	if interruptions <= continuityCount {
		quality := float64(continuityCount-interruptions) * 15
		matches = append(matches, match(domain.InsightExcellentContinuity, 50+quality, 75))
	}

	variance := bedtimeVarianceMinutes(bedtimeHours, baseline)
	if variance > irregularBedtimeMin {
		severity := (variance - irregularBedtimeMin) * 0.5
		matches = append(matches, match(domain.InsightIrregularBedtime, 55+severity, 80))
	}

	if variance <= consistentBedtimeMin {
		consistency := (consistentBedtimeMin - variance) * 2
		matches = append(matches, match(domain.InsightStrongConsistency, 40+consistency, 70))
	}

	shift := bedtimeShiftMinutes(bedtimeHours, baseline)
	if shift > bedtimeShiftMin {
		magnitude := (shift - bedtimeShiftMin) * 0.4
		matches = append(matches, match(domain.InsightEarlierBedtime, 45+magnitude, 65))
	}

	if shift < -bedtimeShiftMin {
		magnitude := (math.Abs(shift) - bedtimeShiftMin) * 0.4
		matches = append(matches, match(domain.InsightLaterBedtime, 50+magnitude, 75))
	}

	durationDiff := (hours - baseline.AvgDurationHours) * 60
	if durationDiff > baselineDurationMin {
		improvement := (durationDiff - baselineDurationMin) * 0.3
		matches = append(matches, match(domain.InsightBetterThanBaseline, 45+improvement, 70))
	}

	if durationDiff < -baselineDurationMin {
		decline := (math.Abs(durationDiff) - baselineDurationMin) * 0.3
		matches = append(matches, match(domain.InsightWorseThanBaseline, 55+decline, 80))
	}

	if strength, ok := detectWeekdayWeekendShift(history); ok {
		matches = append(matches, domain.PatternMatch{Type: domain.InsightWeekdayWeekendShift, Strength: strength})
	}

	if hours >= recoveryHours && interruptions <= recoveryInterruptions {
		quality := (hours-recoveryHours)*10 + float64(recoveryInterruptions-interruptions)*5
		matches = append(matches, match(domain.InsightHighRecovery, 60+quality, 85))
	}

	return matches
}

// TopPatterns ranks matches by strength descending and keeps the strongest
// MaxSelectedPatterns. The sort is stable, so equal strengths keep catalog
// declaration order.
func TopPatterns(matches []domain.PatternMatch) []domain.PatternMatch {
	ranked := make([]domain.PatternMatch, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Strength > ranked[j].Strength
	})
	if len(ranked) > MaxSelectedPatterns {
		ranked = ranked[:MaxSelectedPatterns]
	}
	return ranked
}

func match(t domain.InsightType, strength, cap float64) domain.PatternMatch {
	if strength > cap {
		strength = cap
	}
	return domain.PatternMatch{Type: t, Strength: strength}
}

// detectWeekdayWeekendShift compares average weekday and weekend durations
// across the history window. It needs at least 5 days of history with both
// subsets non-empty, and fires when the averages differ by more than an hour.
func detectWeekdayWeekendShift(history []domain.SleepScore) (float64, bool) {
	if len(history) < weekendShiftMinHistory {
		return 0, false
	}

	var weekday, weekend []float64
	for _, s := range history {
		switch s.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, s.TotalSleepHours)
		default:
			weekday = append(weekday, s.TotalSleepHours)
		}
	}
	if len(weekday) == 0 || len(weekend) == 0 {
		return 0, false
	}

	diff := math.Abs(mean(weekend)-mean(weekday)) * 60
	if diff <= weekendShiftMin {
		return 0, false
	}
	strength := 40 + (diff-weekendShiftMin)*0.2
	if strength > 70 {
		strength = 70
	}
	return strength, true
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
