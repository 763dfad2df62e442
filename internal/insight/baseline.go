package insight

import (
	"math"
	"sort"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// Neutral fallback baseline used when no history exists, representing
// "typical" sleep so that day-one scoring degrades gracefully.
const (
	fallbackAvgDuration    = 7.5
	fallbackMedianBedtime  = 22.5
	fallbackInterruptions  = 3.0
)

// ComputeBaseline reduces a window of prior scored days (excluding the day
// being analyzed) into the weekly baseline. Empty history yields the neutral
// fallback with SampleDays 0.
func ComputeBaseline(history []domain.SleepScore) domain.WeeklyBaseline {
	if len(history) == 0 {
		return domain.WeeklyBaseline{
			AvgDurationHours:   fallbackAvgDuration,
			MedianBedtimeHours: fallbackMedianBedtime,
			AvgInterruptions:   fallbackInterruptions,
		}
	}

	var durationSum, interruptionSum float64
	bedtimes := make([]float64, 0, len(history))
	for _, s := range history {
		durationSum += s.TotalSleepHours
		interruptionSum += float64(s.InterruptionCount)
		bedtimes = append(bedtimes, s.BedtimeHours())
	}
	sort.Float64s(bedtimes)

	n := len(bedtimes)
	var median float64
	if n%2 == 0 {
		median = (bedtimes[n/2-1] + bedtimes[n/2]) / 2.0
	} else {
		median = bedtimes[n/2]
	}

	return domain.WeeklyBaseline{
		AvgDurationHours:   durationSum / float64(len(history)),
		MedianBedtimeHours: median,
		AvgInterruptions:   interruptionSum / float64(len(history)),
		SampleDays:         len(history),
	}
}

// circularHourDiff folds a raw hour difference onto the 24-hour clock so that
// bedtimes spanning midnight compare correctly (23:50 vs 00:10 is 20 minutes,
// not nearly a day).
func circularHourDiff(raw float64) float64 {
	if raw > 12 {
		return raw - 24
	}
	if raw < -12 {
		return raw + 24
	}
	return raw
}

// bedtimeVarianceMinutes is the absolute circular distance, in minutes,
// between tonight's bedtime and the baseline median.
func bedtimeVarianceMinutes(bedtimeHours float64, baseline domain.WeeklyBaseline) float64 {
	return math.Abs(circularHourDiff(bedtimeHours-baseline.MedianBedtimeHours)) * 60
}

// bedtimeShiftMinutes is the signed circular shift, in minutes, from the
// baseline median to tonight's bedtime. Positive means earlier than usual.
func bedtimeShiftMinutes(bedtimeHours float64, baseline domain.WeeklyBaseline) float64 {
	return circularHourDiff(baseline.MedianBedtimeHours-bedtimeHours) * 60
}
