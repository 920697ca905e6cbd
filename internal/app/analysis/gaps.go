package analysis

import (
	"fmt"
	"sort"

	"github.com/dayflow-app/dayflow/internal/domain"
)

// Day window bounds for gap finding. An empty day reports the shorter
// 09:00–17:00 window; a day with tasks is searched against 09:00–21:00.
// The mismatch is inherited behavior: unifying the two would silently
// change the free hours reported for empty days.
const (
	dayStart = "09:00"
	dayEnd   = "21:00"

	emptyDayStart = "09:00"
	emptyDayEnd   = "17:00"

	// Gaps shorter than this are not worth mentioning and are dropped.
	minSlotHours = 0.5
)

// FindGaps computes the free intervals a day's countable tasks leave inside
// the day window. Slots come back in chronological order, non-overlapping,
// each at least minSlotHours long.
func FindGaps(countable []domain.Task) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(countable)+1)

	if len(countable) == 0 {
		slots = append(slots, domain.TimeSlot{
			Start:       emptyDayStart,
			End:         emptyDayEnd,
			Duration:    clockHours(emptyDayEnd) - clockHours(emptyDayStart),
			Description: fmt.Sprintf("Free all day (%s - %s)", emptyDayStart, emptyDayEnd),
		})
		return slots
	}

	sorted := make([]domain.Task, len(countable))
	copy(sorted, countable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	// Lead gap: day start up to the first task.
	first := sorted[0]
	if d := clockHours(first.StartTime) - clockHours(dayStart); d >= minSlotHours {
		slots = append(slots, domain.TimeSlot{
			Start:       dayStart,
			End:         trimClock(first.StartTime),
			Duration:    d,
			Description: fmt.Sprintf("Free before your first task (%.1f hours)", d),
		})
	}

	// Gaps between adjacent tasks. An overlapping pair yields a non-positive
	// gap and is skipped; exact back-to-back tasks produce nothing either.
	for i := 0; i+1 < len(sorted); i++ {
		end := sorted[i].EndTime
		next := sorted[i+1].StartTime
		if d := clockHours(next) - clockHours(end); d >= minSlotHours {
			slots = append(slots, domain.TimeSlot{
				Start:       trimClock(end),
				End:         trimClock(next),
				Duration:    d,
				Description: fmt.Sprintf("Free between tasks (%.1f hours)", d),
			})
		}
	}

	// Trailing gap: last task up to day end.
	last := sorted[len(sorted)-1]
	if d := clockHours(dayEnd) - clockHours(last.EndTime); d >= minSlotHours {
		slots = append(slots, domain.TimeSlot{
			Start:       trimClock(last.EndTime),
			End:         dayEnd,
			Duration:    d,
			Description: fmt.Sprintf("Free after your last task (%.1f hours)", d),
		})
	}

	return slots
}
