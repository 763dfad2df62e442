package insight

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// trendNoteNoHistory is the exact note used whenever fewer than 2 prior days
// exist to derive a trend from.
const trendNoteNoHistory = "Trend: Not enough historical data yet."

const noPlanNeeded = "No additional plan needed for this insight."

// Explanation template variants per pattern. Randomization affects wording
// only; the interpolated numbers are identical across variants.
var (
	shortDurationTemplates = []string{
		"You slept %s, which is below the general wellness range of 7-9 hours. This pattern often aligns with reduced recovery time.",
		"Your sleep duration of %s falls short of the typical 7-9 hour range. This may align with increased sleep debt or schedule pressures.",
		"You got %s of sleep, below the wellness guideline of 7-9 hours. This pattern can impact your daytime energy and recovery capacity.",
	}

	longDurationTemplates = []string{
		"You slept %s, which exceeds the typical 7-9 hour range. This pattern can indicate sleep debt recovery or may align with your body's natural sleep need.",
		"Your sleep duration of %s is above the standard 7-9 hour guideline. This might reflect your individual sleep requirement or a recovery period.",
		"You got %s of sleep, more than the typical 7-9 hour range. This pattern may signal recovery from accumulated sleep debt.",
	}

	highDisruptionTemplates = []string{
		"You experienced %d %s during sleep. This pattern often aligns with environmental factors, temperature, or evening routines that affect sleep architecture.",
		"Your sleep showed %d %s, which can relate to room temperature, noise levels, or pre-sleep habits impacting continuity.",
		"You had %d %s throughout the night. This pattern may align with environmental conditions or lifestyle factors affecting sleep quality.",
	}

	excellentContinuityTemplates = []string{
		"You had only %d %s during sleep, indicating strong sleep continuity. This pattern supports effective recovery and restorative sleep cycles.",
		"Your sleep showed minimal disruption with just %d %s. This continuity supports deep, restorative sleep phases.",
		"You experienced only %d %s, reflecting excellent sleep quality and uninterrupted rest patterns.",
	}

	irregularBedtimeTemplates = []string{
		"Your bedtime at %s shows significant variation (approximately %d minutes from your typical schedule). This pattern often aligns with disrupted circadian rhythm patterns.",
		"You went to bed at %s, differing by about %d minutes from your usual routine. This inconsistency can affect your body's internal clock alignment.",
		"Your bedtime of %s varies by roughly %d minutes from your baseline. This pattern may relate to schedule irregularities or shifting routines.",
	}

	strongConsistencyTemplates = []string{
		"Your bedtime at %s closely aligns with your typical schedule. This consistency supports healthy circadian rhythm alignment and sleep quality.",
		"You maintained a consistent bedtime of %s, matching your regular pattern. This stability promotes optimal sleep-wake cycle regulation.",
		"Your bedtime at %s shows strong consistency with your routine. This predictability supports your body's natural sleep timing.",
	}

	earlierBedtimeTemplates = []string{
		"You went to bed approximately %d minutes earlier than your typical schedule. This shift may align with changes in your daily routine or sleep need.",
		"Your bedtime came about %d minutes ahead of your usual schedule. An earlier night like this can reflect higher sleep pressure or a lighter evening.",
	}

	laterBedtimeTemplates = []string{
		"You went to bed approximately %d minutes later than your typical schedule. This pattern often aligns with evening activities or schedule variations.",
		"Your bedtime ran about %d minutes behind your usual schedule. Later nights like this often trace back to evening plans or a delayed wind-down.",
	}

	betterThanBaselineTemplates = []string{
		"You slept %s, which is above your 7-day average. This pattern indicates positive improvement in sleep duration alignment with wellness ranges.",
		"Your %s of sleep exceeds your 7-day average. Nights like this help offset earlier short sleep and support recovery.",
	}

	worseThanBaselineTemplates = []string{
		"You slept %s, which is below your 7-day average. This pattern may align with schedule changes or sleep opportunity variations.",
		"Your %s of sleep falls below your 7-day average. A dip like this often reflects a compressed sleep opportunity.",
	}

	weekdayWeekendTemplates = []string{
		"Your sleep duration shows notable differences between weekdays and weekends. This pattern often aligns with schedule variations and may indicate weekday sleep opportunity limitations.",
		"Your weekday and weekend sleep durations diverge noticeably. Differences like this usually track work-week schedule pressure.",
	}

	highRecoveryTemplates = []string{
		"You slept %s with only %d %s. This combination supports optimal recovery and aligns with general wellness sleep recommendations.",
		"With %s of sleep and just %d %s, last night combined solid duration with strong continuity.",
	}
)

// Composer turns ranked pattern matches into natural-language insights.
// The random source only drives template wording selection; inject a seeded
// source to pin phrasing in tests.
type Composer struct {
	rng *rand.Rand
}

// NewComposer creates a Composer. A nil rng falls back to a time-seeded source.
func NewComposer(rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{rng: rng}
}

// Compose builds the ordered insight list for the night. With no matches it
// returns the single "Not Enough Data" insight. History is ordered oldest
// first and excludes the analyzed day.
func (c *Composer) Compose(score *domain.SleepScore, history []domain.SleepScore, baseline domain.WeeklyBaseline, matches []domain.PatternMatch) []domain.InsightItem {
	if len(matches) == 0 {
		return []domain.InsightItem{NoDataInsight()}
	}

	top := TopPatterns(matches)
	items := make([]domain.InsightItem, 0, len(top))
	for i, m := range top {
		items = append(items, c.composeOne(m.Type, score, baseline, history, i+1))
	}
	return items
}

// NoDataInsight is the canned insight substituted when the day has no
// qualifying sleep data.
func NoDataInsight() domain.InsightItem {
	return domain.InsightItem{
		Type:        domain.InsightNoData,
		Title:       "Not Enough Data",
		Explanation: "We don't have sufficient sleep data for this date to generate insights.",
		ActionPlan:  "Wear your sleep tracker to bed to capture tonight's sleep patterns.",
		Priority:    1,
		TrendNote:   "",
	}
}

func (c *Composer) composeOne(t domain.InsightType, score *domain.SleepScore, baseline domain.WeeklyBaseline, history []domain.SleepScore, priority int) domain.InsightItem {
	duration := score.TotalSleepHours
	interruptions := score.InterruptionCount
	bedtime := score.FormattedBedtime()
	word := interruptionWord(interruptions)

	durationDiff := (duration - baseline.AvgDurationHours) * 60
	interruptionDiff := interruptions - int(baseline.AvgInterruptions)
	context := baselineContext(durationDiff, interruptionDiff)

	plan := noPlanNeeded
	if priority == 1 {
		plan = actionPlan(t)
	}

	var title, explanation string
	switch t {
	case domain.InsightShortDuration:
		title = "Short Sleep Duration Detected"
		explanation = fmt.Sprintf(c.pick(shortDurationTemplates), domain.FormatHours(duration))

	case domain.InsightLongDuration:
		title = "Extended Sleep Duration Noted"
		explanation = fmt.Sprintf(c.pick(longDurationTemplates), domain.FormatHours(duration))

	case domain.InsightHighDisruption:
		title = "Sleep Continuity Disrupted"
		explanation = fmt.Sprintf(c.pick(highDisruptionTemplates), interruptions, word)

	case domain.InsightExcellentContinuity:
		title = "Excellent Sleep Continuity"
		explanation = fmt.Sprintf(c.pick(excellentContinuityTemplates), interruptions, word)

	case domain.InsightIrregularBedtime:
		title = "Bedtime Inconsistency Detected"
		variance := bedtimeVarianceMinutes(score.BedtimeHours(), baseline)
		explanation = fmt.Sprintf(c.pick(irregularBedtimeTemplates), bedtime, int(variance))

	case domain.InsightStrongConsistency:
		title = "Strong Bedtime Consistency"
		explanation = fmt.Sprintf(c.pick(strongConsistencyTemplates), bedtime)

	case domain.InsightEarlierBedtime:
		title = "Earlier Bedtime Pattern"
		shift := bedtimeShiftMinutes(score.BedtimeHours(), baseline)
		explanation = fmt.Sprintf(c.pick(earlierBedtimeTemplates), int(shift))

	case domain.InsightLaterBedtime:
		title = "Later Bedtime Pattern"
		shift := bedtimeShiftMinutes(score.BedtimeHours(), baseline)
		if shift < 0 {
			shift = -shift
		}
		explanation = fmt.Sprintf(c.pick(laterBedtimeTemplates), int(shift))

	case domain.InsightBetterThanBaseline:
		title = "Above Your Weekly Baseline"
		explanation = fmt.Sprintf(c.pick(betterThanBaselineTemplates), domain.FormatHours(duration))

	case domain.InsightWorseThanBaseline:
		title = "Below Your Weekly Baseline"
		explanation = fmt.Sprintf(c.pick(worseThanBaselineTemplates), domain.FormatHours(duration))

	case domain.InsightWeekdayWeekendShift:
		title = "Weekday-Weekend Sleep Pattern"
		explanation = c.pick(weekdayWeekendTemplates)

	case domain.InsightHighRecovery:
		title = "High-Quality Recovery Night"
		explanation = fmt.Sprintf(c.pick(highRecoveryTemplates), domain.FormatHours(duration), interruptions, word)

	default:
		return NoDataInsight()
	}

	return domain.InsightItem{
		Type:        t,
		Title:       title,
		Explanation: explanation + " " + context,
		ActionPlan:  plan,
		Priority:    priority,
		TrendNote:   trendNote(t, score, history),
	}
}

func (c *Composer) pick(templates []string) string {
	return templates[c.rng.Intn(len(templates))]
}

// baselineContext states how the night compares to the 7-day baseline:
// duration deltas of 15+ minutes and interruption deltas of 2+ are named with
// direction and magnitude, otherwise the night is reported as aligned.
func baselineContext(durationDiff float64, interruptionDiff int) string {
	var parts []string

	if durationDiff >= 15 || durationDiff <= -15 {
		minutes := int(durationDiff)
		direction := "more"
		if minutes < 0 {
			minutes = -minutes
			direction = "less"
		}
		parts = append(parts, fmt.Sprintf("you slept %d minutes %s than your weekly average", minutes, direction))
	}

	if interruptionDiff >= 2 || interruptionDiff <= -2 {
		delta := interruptionDiff
		direction := "higher"
		if delta < 0 {
			delta = -delta
			direction = "lower"
		}
		parts = append(parts, fmt.Sprintf("interruptions were %d %s than your baseline", delta, direction))
	}

	if len(parts) == 0 {
		return "This aligns closely with your 7-day baseline patterns."
	}
	out := "Compared to your 7-day baseline: " + parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out + "."
}

// actionPlan returns the concrete recommendation for the rank-1 insight.
func actionPlan(t domain.InsightType) string {
	switch t {
	case domain.InsightShortDuration, domain.InsightWorseThanBaseline:
		return "Tonight, aim for an earlier bedtime to support adequate sleep duration. Consider reducing evening screen time after 9 PM, avoiding stimulants after 2 PM, and creating a wind-down routine 30 minutes before sleep."

	case domain.InsightHighDisruption:
		return "Tonight, optimize your sleep environment to support continuity. Keep your bedroom cool (65-68°F), minimize noise and light exposure, avoid heavy meals 3 hours before bed, and limit fluid intake after 8 PM."

	case domain.InsightIrregularBedtime, domain.InsightEarlierBedtime, domain.InsightLaterBedtime, domain.InsightWeekdayWeekendShift:
		return "Tonight, return to your regular sleep schedule to support circadian rhythm alignment. Set a consistent bedtime alarm, start your wind-down routine at the same time, and expose yourself to bright light in the morning."

	case domain.InsightLongDuration:
		return "Tonight, prioritize sleep quality over duration. Keep your bedtime consistent, ensure your room is cool and dark, and consider limiting daytime naps to support nighttime sleep efficiency."

	case domain.InsightNoData:
		return "Wear your sleep tracker to bed to capture tonight's sleep patterns."

	default:
		// excellentContinuity, strongConsistency, betterThanBaseline, highRecovery
		return "Tonight, maintain your current routine that's supporting good sleep patterns. Keep consistent sleep and wake times, continue your wind-down practices, and avoid late-day stimulants or schedule disruptions."
	}
}

// trendNote derives a short history-aware statement. History is ordered
// oldest first; its last element is the most recent prior day.
func trendNote(t domain.InsightType, score *domain.SleepScore, history []domain.SleepScore) string {
	if t == domain.InsightNoData {
		return ""
	}
	if len(history) < 2 {
		return trendNoteNoHistory
	}

	switch t {
	case domain.InsightShortDuration:
		if days := consecutiveMatchingDays(t, history); days >= 3 {
			return fmt.Sprintf("Trend: This is the %s day with short duration.", ordinal(days))
		}
		if score.TotalSleepHours < trailingAvgDuration(history) {
			return "Trend: Duration decreased compared to your recent average."
		}
		return "Trend: Duration stabilized vs. your recent pattern."

	case domain.InsightLongDuration:
		if score.TotalSleepHours > trailingAvgDuration(history) {
			return "Trend: Duration increased compared to your recent average."
		}
		return "Trend: Duration consistent with your recent pattern."

	case domain.InsightHighDisruption:
		if days := consecutiveMatchingDays(t, history); days >= 3 {
			return fmt.Sprintf("Trend: This is the %s day with high disruption.", ordinal(days))
		}
		yesterday := history[len(history)-1]
		switch diff := score.InterruptionCount - yesterday.InterruptionCount; {
		case diff > 0:
			return "Trend: Interruptions increased compared to yesterday."
		case diff < 0:
			return "Trend: Interruptions decreased compared to yesterday."
		default:
			return "Trend: Interruption count similar to yesterday."
		}

	case domain.InsightExcellentContinuity:
		if score.InterruptionCount <= history[len(history)-1].InterruptionCount {
			return "Trend: Sleep continuity improving or stable."
		}
		return "Trend: Sleep quality remains strong overall."

	case domain.InsightIrregularBedtime, domain.InsightEarlierBedtime, domain.InsightLaterBedtime:
		return "Trend: Bedtime pattern shows variation from your baseline."

	case domain.InsightStrongConsistency:
		return "Trend: You're maintaining consistent sleep timing."

	case domain.InsightBetterThanBaseline:
		return "Trend: Duration improved vs. your weekly baseline."

	case domain.InsightWorseThanBaseline:
		return "Trend: Duration below your weekly baseline."

	case domain.InsightWeekdayWeekendShift:
		return "Trend: Sleep patterns differ between weekdays and weekends."

	case domain.InsightHighRecovery:
		return "Trend: Excellent recovery pattern maintained."
	}

	return "Trend: Pattern consistent with recent observations."
}

// consecutiveMatchingDays counts how many days in a row, including the
// analyzed night, matched the pattern's trigger, looking back at most 2
// additional days.
func consecutiveMatchingDays(t domain.InsightType, history []domain.SleepScore) int {
	matches := func(s domain.SleepScore) bool {
		switch t {
		case domain.InsightShortDuration:
			return s.TotalSleepHours < shortDurationHours
		case domain.InsightHighDisruption:
			return s.InterruptionCount >= highDisruptionCount
		}
		return false
	}

	days := 1
	if len(history) >= 1 && matches(history[len(history)-1]) {
		days++
		if len(history) >= 2 && matches(history[len(history)-2]) {
			days++
		}
	}
	return days
}

// trailingAvgDuration averages the last up-to-3 prior days' durations.
func trailingAvgDuration(history []domain.SleepScore) float64 {
	n := len(history)
	if n > 3 {
		n = 3
	}
	sum := 0.0
	for _, s := range history[len(history)-n:] {
		sum += s.TotalSleepHours
	}
	return sum / float64(n)
}

func interruptionWord(count int) string {
	if count == 1 {
		return "interruption"
	}
	return "interruptions"
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
