package insight

import (
	"fmt"
	"math"

	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// ReadinessFor grades the day ahead on a 1-10 scale from the night's total
// score (one readiness point per ten score points, clamped to 1-10).
func ReadinessFor(score *domain.SleepScore) domain.ReadinessScore {
	value := int(math.Round(float64(score.TotalScore) / 10.0))
	if value < 1 {
		value = 1
	}
	if value > 10 {
		value = 10
	}

	r := domain.ReadinessScore{Score: value}
	switch {
	case value >= 9:
		r.Category = "Peak Performance"
		r.Description = "Peak performance day — great for hard workouts and challenging tasks."
		r.Advice = "Go for it!"
	case value >= 7:
		r.Category = "High Readiness"
		r.Description = "High readiness — your energy levels are solid for a productive day."
		r.Advice = "Strong day ahead"
	case value >= 5:
		r.Category = "Moderate Readiness"
		r.Description = "Moderate readiness — pace yourself and prioritize important tasks."
		r.Advice = "Balanced approach"
	case value >= 3:
		r.Category = "Low Energy"
		r.Description = "Low energy — consider light activities and prioritize rest tonight."
		r.Advice = "Take it easier"
	default:
		r.Category = "Recovery Needed"
		r.Description = "Recovery needed — take it easy today and focus on sleep tonight."
		r.Advice = "Prioritize recovery"
	}
	return r
}

// DailyTipFor builds one actionable tip targeting the night's weakest
// component. Tip priority escalates with how far the component fell below
// its ceiling.
func DailyTipFor(score *domain.SleepScore) domain.DailyTip {
	component := score.LowestComponent()

	var percentage float64
	switch component {
	case domain.ComponentBedtime:
		percentage = score.BedtimePercentage()
	case domain.ComponentInterruptions:
		percentage = score.InterruptionsPercentage()
	default:
		percentage = score.DurationPercentage()
	}

	priority := domain.TipPriorityMedium
	if percentage < 0.4 {
		priority = domain.TipPriorityCritical
	} else if percentage < 0.7 {
		priority = domain.TipPriorityHigh
	}

	switch component {
	case domain.ComponentBedtime:
		return bedtimeTip(score, priority)
	case domain.ComponentInterruptions:
		return interruptionsTip(score, priority)
	default:
		return durationTip(score, priority)
	}
}

func durationTip(score *domain.SleepScore, priority domain.TipPriority) domain.DailyTip {
	const targetHours = 7.5

	if deficit := targetHours - score.TotalSleepHours; deficit > 0 {
		return domain.DailyTip{
			Title:      "Extend Your Sleep Window",
			Message:    fmt.Sprintf("You slept %s last night, which is below the recommended 7-9 hours.", score.FormattedDuration()),
			ActionItem: fmt.Sprintf("Go to bed %d minutes earlier tonight to reach 7h 30m.", int(deficit*60)),
			Component:  domain.ComponentDuration,
			Priority:   priority,
		}
	}
	return domain.DailyTip{
		Title:      "Maintain Your Sleep Duration",
		Message:    fmt.Sprintf("You're getting good sleep duration at %s.", score.FormattedDuration()),
		ActionItem: "Keep your current sleep schedule consistent to maintain this healthy pattern.",
		Component:  domain.ComponentDuration,
		Priority:   priority,
	}
}

func bedtimeTip(score *domain.SleepScore, priority domain.TipPriority) domain.DailyTip {
	hour := score.BedtimeHour

	switch {
	case hour >= 23 || hour < 6:
		return domain.DailyTip{
			Title:      "Stick to a Consistent Bedtime",
			Message:    fmt.Sprintf("You went to bed at %s, which is later than optimal.", score.FormattedBedtime()),
			ActionItem: "Set a wind-down alarm for 9:30 PM and aim to be in bed by 10:00 PM.",
			Component:  domain.ComponentBedtime,
			Priority:   priority,
		}
	case hour >= 6 && hour < 20:
		return domain.DailyTip{
			Title:      "Adjust Your Sleep Schedule",
			Message:    fmt.Sprintf("Your bedtime of %s is unusually early, which may disrupt your rhythm.", score.FormattedBedtime()),
			ActionItem: "Gradually shift your bedtime later by 15-30 minutes to align with natural circadian rhythms.",
			Component:  domain.ComponentBedtime,
			Priority:   priority,
		}
	default:
		return domain.DailyTip{
			Title:      "Maintain Bedtime Consistency",
			Message:    fmt.Sprintf("Your bedtime of %s is in a good range.", score.FormattedBedtime()),
			ActionItem: "Keep going to bed at the same time each night, even on weekends, to strengthen your sleep routine.",
			Component:  domain.ComponentBedtime,
			Priority:   priority,
		}
	}
}

func interruptionsTip(score *domain.SleepScore, priority domain.TipPriority) domain.DailyTip {
	count := score.InterruptionCount

	switch {
	case count <= 1:
		return domain.DailyTip{
			Title:      "Excellent Sleep Continuity",
			Message:    "You had minimal interruptions last night — great sleep quality!",
			ActionItem: "Keep your current sleep environment and habits. Whatever you're doing is working.",
			Component:  domain.ComponentInterruptions,
			Priority:   priority,
		}
	case count <= 3:
		return domain.DailyTip{
			Title:      "Reduce Sleep Interruptions",
			Message:    fmt.Sprintf("You woke up %d times last night, which affected your sleep quality.", count),
			ActionItem: "Limit fluids 2 hours before bed and reduce screen time 30 minutes before sleep.",
			Component:  domain.ComponentInterruptions,
			Priority:   priority,
		}
	default:
		return domain.DailyTip{
			Title:      "Optimize Your Sleep Environment",
			Message:    fmt.Sprintf("You had %d interruptions last night, significantly impacting sleep quality.", count),
			ActionItem: "Keep bedroom cool (65-68°F), dark, and quiet. Consider blackout curtains or white noise.",
			Component:  domain.ComponentInterruptions,
			Priority:   priority,
		}
	}
}
