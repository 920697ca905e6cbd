package analysis

import (
	"fmt"

	"github.com/dayflow-app/dayflow/internal/domain"
)

// ComposeInput carries everything the recommendation composer looks at.
// Countable must already be sorted by start time. CurrentHour is the
// wall-clock hour at invocation time, not on the analyzed date — the
// time-of-day tips deliberately follow "now".
type ComposeInput struct {
	Classification Classification
	Countable      []domain.Task
	Slots          []domain.TimeSlot
	TotalHours     float64
	ExerciseCount  int
	PersonalCount  int
	IsToday        bool
	CurrentHour    int
}

// Compose merges the classifier output, the working span, balance nudges,
// same-day tips, per-slot activity suggestions, and a time-of-day tip into
// one ordered recommendation list. Nothing is deduplicated or truncated.
func Compose(in ComposeInput) (recommendations, warnings []string) {
	recommendations = append(make([]string, 0, 8), in.Classification.Recommendations...)
	warnings = append(make([]string, 0, 1), in.Classification.Warnings...)

	// Working span.
	if len(in.Countable) >= 1 {
		first := in.Countable[0]
		last := in.Countable[len(in.Countable)-1]
		recommendations = append(recommendations, fmt.Sprintf(
			"You are working from %s to %s.",
			trimClock(first.StartTime), trimClock(last.EndTime)))
	}

	// Busy day, many tasks: break cadence.
	if len(in.Countable) >= 3 && in.TotalHours > 6 {
		recommendations = append(recommendations, fmt.Sprintf(
			"With %d tasks on the list, pause for a break every 2 hours.",
			len(in.Countable)))
	}

	// Exercise balance.
	if in.ExerciseCount == 0 && in.TotalHours > 6 {
		recommendations = append(recommendations,
			"Try to find 30 minutes for some exercise today.")
	} else if in.ExerciseCount > 0 {
		recommendations = append(recommendations,
			"Exercise is already on your schedule. Good balance.")
	}

	// Personal time.
	if in.PersonalCount == 0 && in.TotalHours > 8 {
		recommendations = append(recommendations,
			"Reserve some personal time to rest and recharge.")
	}

	// Same-day tips, tied to the current wall clock.
	if in.IsToday {
		if in.TotalHours > 8 {
			recommendations = append(recommendations,
				"Long day today. Make sure you get enough sleep tonight.")
		}
		if in.CurrentHour >= 18 {
			recommendations = append(recommendations,
				"It is getting late. Start winding down.")
		} else if in.CurrentHour < 12 && in.TotalHours > 5 {
			recommendations = append(recommendations,
				"Plenty of work left today. Manage your time carefully.")
		}
	}

	// Activity suggestions for free slots, tiered by length. Every slot is
	// at least half an hour, so the final tier covers the remainder.
	if len(in.Slots) > 0 && in.TotalHours < 8 {
		for _, s := range in.Slots {
			switch {
			case s.Duration >= 2:
				recommendations = append(recommendations, fmt.Sprintf(
					"From %s to %s you have time to read or study.", s.Start, s.End))
			case s.Duration >= 1.5:
				recommendations = append(recommendations, fmt.Sprintf(
					"From %s to %s you could watch a short video or rest.", s.Start, s.End))
			case s.Duration >= 1:
				recommendations = append(recommendations, fmt.Sprintf(
					"From %s to %s you could grab a coffee and sit down.", s.Start, s.End))
			default:
				recommendations = append(recommendations, fmt.Sprintf(
					"From %s to %s you could stretch or meditate.", s.Start, s.End))
			}
		}
		if in.TotalHours < 6 && len(in.Slots) > 2 {
			recommendations = append(recommendations,
				"You have plenty of free time. You could take on more work.")
		} else if in.TotalHours == 0 {
			recommendations = append(recommendations, "Your day is fully open.")
		}
	}

	recommendations = append(recommendations, timeOfDayTip(in.CurrentHour))
	return recommendations, warnings
}

// timeOfDayTip returns the single generic tip for the current wall-clock
// hour. It applies whatever day is being analyzed.
func timeOfDayTip(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Morning hours are good for focused work."
	case hour >= 12 && hour < 15:
		return "Afternoon: keep lighter tasks for after lunch."
	case hour >= 15 && hour < 18:
		return "Evening is coming: wrap up and plan tomorrow."
	default:
		return "Rest time: stick to relaxing activities."
	}
}
