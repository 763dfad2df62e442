package insight

import (
	"math"
	"testing"
	"time"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

func hasPattern(matches []domain.PatternMatch, t domain.InsightType) (domain.PatternMatch, bool) {
	for _, m := range matches {
		if m.Type == t {
			return m, true
		}
	}
	return domain.PatternMatch{}, false
}

func TestDetectPatternsRoughNight(t *testing.T) {
	score := &domain.SleepScore{
		TotalSleepHours:   5.4,
		BedtimeHour:       23,
		BedtimeMinute:     45,
		InterruptionCount: 8,
	}
	baseline := ComputeBaseline(nil)

	matches := DetectPatterns(score, nil, baseline)

	want := map[domain.InsightType]float64{
		domain.InsightShortDuration:     61.5,
		domain.InsightHighDisruption:    75,
		domain.InsightIrregularBedtime:  70,
		domain.InsightLaterBedtime:      64,
		domain.InsightWorseThanBaseline: 80, // raw 80.8 capped
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches %v, want %d", len(matches), matches, len(want))
	}
	for typ, strength := range want {
		m, ok := hasPattern(matches, typ)
		if !ok {
			t.Errorf("pattern %s did not fire", typ)
			continue
		}
		if math.Abs(m.Strength-strength) > 1e-6 {
			t.Errorf("%s strength = %v, want %v", typ, m.Strength, strength)
		}
	}

	top := TopPatterns(matches)
	wantOrder := []domain.InsightType{
		domain.InsightWorseThanBaseline,
		domain.InsightHighDisruption,
		domain.InsightIrregularBedtime,
	}
	for i, typ := range wantOrder {
		if top[i].Type != typ {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Type, typ)
		}
	}
}

func TestDetectPatternsSolidNight(t *testing.T) {
	score := &domain.SleepScore{
		TotalSleepHours:   8.0,
		BedtimeHour:       22,
		InterruptionCount: 1,
	}
	history := historyOf(7, 7.5, 22, 0, 3)
	baseline := ComputeBaseline(history)

	matches := DetectPatterns(score, history, baseline)

	want := map[domain.InsightType]float64{
		domain.InsightExcellentContinuity: 65,
		domain.InsightStrongConsistency:   70,
		domain.InsightHighRecovery:        75,
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches %v, want %d", len(matches), matches, len(want))
	}
	for typ, strength := range want {
		m, ok := hasPattern(matches, typ)
		if !ok {
			t.Errorf("pattern %s did not fire", typ)
			continue
		}
		if math.Abs(m.Strength-strength) > 1e-6 {
			t.Errorf("%s strength = %v, want %v", typ, m.Strength, strength)
		}
	}
}

func TestDetectPatternsStrengthCaps(t *testing.T) {
	// Extreme values must not push any strength past its cap or above 100.
	score := &domain.SleepScore{
		TotalSleepHours:   0.5,
		BedtimeHour:       4,
		InterruptionCount: 40,
	}
	history := historyOf(7, 7.5, 22, 0, 3)
	baseline := ComputeBaseline(history)

	matches := DetectPatterns(score, history, baseline)

	if m, ok := hasPattern(matches, domain.InsightShortDuration); !ok || m.Strength != 90 {
		t.Errorf("short duration = %+v, want capped strength 90", m)
	}
	if m, ok := hasPattern(matches, domain.InsightHighDisruption); !ok || m.Strength != 95 {
		t.Errorf("high disruption = %+v, want capped strength 95", m)
	}
	for _, m := range matches {
		if m.Strength <= 0 || m.Strength > 100 {
			t.Errorf("%s strength %v out of (0,100]", m.Type, m.Strength)
		}
	}
}

func TestDetectPatternsMutuallyExclusivePairs(t *testing.T) {
	scores := []*domain.SleepScore{
		{TotalSleepHours: 4.0, BedtimeHour: 22, InterruptionCount: 0},
		{TotalSleepHours: 10.5, BedtimeHour: 2, InterruptionCount: 9},
		{TotalSleepHours: 7.8, BedtimeHour: 21, BedtimeMinute: 15, InterruptionCount: 4},
	}
	history := historyOf(7, 7.5, 22, 0, 3)
	baseline := ComputeBaseline(history)

	exclusive := [][2]domain.InsightType{
		{domain.InsightShortDuration, domain.InsightLongDuration},
		{domain.InsightHighDisruption, domain.InsightExcellentContinuity},
		{domain.InsightIrregularBedtime, domain.InsightStrongConsistency},
		{domain.InsightEarlierBedtime, domain.InsightLaterBedtime},
		{domain.InsightBetterThanBaseline, domain.InsightWorseThanBaseline},
	}

	for _, score := range scores {
		matches := DetectPatterns(score, history, baseline)
		for _, pair := range exclusive {
			_, a := hasPattern(matches, pair[0])
			_, b := hasPattern(matches, pair[1])
			if a && b {
				t.Errorf("score %+v fired both %s and %s", score, pair[0], pair[1])
			}
		}
	}
}

func TestDetectWeekdayWeekendShift(t *testing.T) {
	// Jan 15 2024 is a Monday, so a 7-day window ending there spans one
	// full weekend.
	build := func(weekdayHours, weekendHours float64) []domain.SleepScore {
		history := historyOf(7, weekdayHours, 22, 0, 2)
		for i := range history {
			switch history[i].Date.Weekday() {
			case time.Saturday, time.Sunday:
				history[i].TotalSleepHours = weekendHours
			}
		}
		return history
	}

	t.Run("fires above one hour difference", func(t *testing.T) {
		strength, ok := detectWeekdayWeekendShift(build(7.0, 8.5))
		if !ok {
			t.Fatal("expected shift to fire for 90 minute difference")
		}
		if math.Abs(strength-46) > 1e-6 {
			t.Errorf("strength = %v, want 46", strength)
		}
	})

	t.Run("silent below threshold", func(t *testing.T) {
		if _, ok := detectWeekdayWeekendShift(build(7.0, 7.5)); ok {
			t.Error("fired for a 30 minute difference")
		}
	})

	t.Run("needs five days of history", func(t *testing.T) {
		if _, ok := detectWeekdayWeekendShift(build(6.0, 9.0)[:4]); ok {
			t.Error("fired with only 4 days of history")
		}
	})

	t.Run("needs both weekday and weekend samples", func(t *testing.T) {
		var weekdaysOnly []domain.SleepScore
		for _, s := range historyOf(10, 7.0, 22, 0, 2) {
			if wd := s.Date.Weekday(); wd != time.Saturday && wd != time.Sunday {
				weekdaysOnly = append(weekdaysOnly, s)
			}
		}
		if _, ok := detectWeekdayWeekendShift(weekdaysOnly); ok {
			t.Error("fired without any weekend samples")
		}
	})
}

func TestTopPatternsStableTieBreak(t *testing.T) {
	matches := []domain.PatternMatch{
		{Type: domain.InsightShortDuration, Strength: 70},
		{Type: domain.InsightHighDisruption, Strength: 70},
		{Type: domain.InsightIrregularBedtime, Strength: 70},
		{Type: domain.InsightLaterBedtime, Strength: 70},
	}

	top := TopPatterns(matches)
	if len(top) != MaxSelectedPatterns {
		t.Fatalf("len = %d, want %d", len(top), MaxSelectedPatterns)
	}
	wantOrder := []domain.InsightType{
		domain.InsightShortDuration,
		domain.InsightHighDisruption,
		domain.InsightIrregularBedtime,
	}
	for i, typ := range wantOrder {
		if top[i].Type != typ {
			t.Errorf("top[%d] = %s, want %s (stable catalog order)", i, top[i].Type, typ)
		}
	}

	// Input order must survive ranking untouched.
	if matches[3].Type != domain.InsightLaterBedtime {
		t.Error("TopPatterns mutated its input")
	}
}
