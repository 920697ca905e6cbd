package analysis

import (
	"strings"
	"testing"

	"github.com/dayflow-app/dayflow/internal/domain"
)

func containsLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestCompose_ClassifierOutputComesFirst(t *testing.T) {
	cls := Classify(12)
	recs, warns := Compose(ComposeInput{
		Classification: cls,
		TotalHours:     12,
		CurrentHour:    10,
	})

	for i, want := range cls.Recommendations {
		if recs[i] != want {
			t.Errorf("recs[%d] = %q, want classifier rec %q", i, recs[i], want)
		}
	}
	if len(warns) != 1 || warns[0] != cls.Warnings[0] {
		t.Errorf("warnings = %v, want classifier warning verbatim", warns)
	}
}

func TestCompose_TimeOfDayTipComesLast(t *testing.T) {
	recs, _ := Compose(ComposeInput{
		Classification: Classify(3),
		TotalHours:     3,
		CurrentHour:    10,
	})
	if last := recs[len(recs)-1]; last != timeOfDayTip(10) {
		t.Errorf("last rec = %q, want time-of-day tip", last)
	}
}

func TestCompose_WorkingSpan(t *testing.T) {
	countable := []domain.Task{
		task("work", "09:00:00", "10:00:00"),
		task("work", "13:00:00", "14:30:00"),
	}
	recs, _ := Compose(ComposeInput{
		Classification: Classify(2.5),
		Countable:      countable,
		TotalHours:     2.5,
		CurrentHour:    10,
	})
	if !containsLine(recs, "working from 09:00 to 14:30") {
		t.Errorf("missing working-span line in %v", recs)
	}
}

func TestCompose_BreakReminderNeedsThreeTasksAndSixHours(t *testing.T) {
	three := []domain.Task{
		task("work", "09:00:00", "12:00:00"),
		task("work", "12:00:00", "15:00:00"),
		task("work", "15:00:00", "16:30:00"),
	}

	recs, _ := Compose(ComposeInput{
		Classification: Classify(7.5),
		Countable:      three,
		TotalHours:     7.5,
		CurrentHour:    10,
	})
	if !containsLine(recs, "every 2 hours") {
		t.Errorf("expected 2-hour break reminder in %v", recs)
	}

	// Three tasks but under six hours: no reminder.
	recs, _ = Compose(ComposeInput{
		Classification: Classify(3),
		Countable:      three,
		TotalHours:     3,
		CurrentHour:    10,
	})
	if containsLine(recs, "every 2 hours") {
		t.Errorf("unexpected break reminder at 3 hours: %v", recs)
	}
}

func TestCompose_ExerciseLines(t *testing.T) {
	// No exercise on a long day: suggest finding 30 minutes.
	recs, _ := Compose(ComposeInput{
		Classification: Classify(7),
		TotalHours:     7,
		CurrentHour:    10,
	})
	if !containsLine(recs, "30 minutes") {
		t.Errorf("expected exercise suggestion in %v", recs)
	}
	if containsLine(recs, "Good balance") {
		t.Errorf("unexpected affirmation without exercise: %v", recs)
	}

	// Exercise present: affirm, never suggest.
	recs, _ = Compose(ComposeInput{
		Classification: Classify(7),
		TotalHours:     7,
		ExerciseCount:  1,
		CurrentHour:    10,
	})
	if !containsLine(recs, "Good balance") {
		t.Errorf("expected exercise affirmation in %v", recs)
	}
	if containsLine(recs, "30 minutes") {
		t.Errorf("unexpected exercise suggestion in %v", recs)
	}
}

func TestCompose_PersonalTimeOnlyOverEightHours(t *testing.T) {
	recs, _ := Compose(ComposeInput{
		Classification: Classify(9),
		TotalHours:     9,
		CurrentHour:    10,
	})
	if !containsLine(recs, "personal time") {
		t.Errorf("expected personal-time line in %v", recs)
	}

	recs, _ = Compose(ComposeInput{
		Classification: Classify(7),
		TotalHours:     7,
		CurrentHour:    10,
	})
	if containsLine(recs, "personal time") {
		t.Errorf("unexpected personal-time line at 7 hours: %v", recs)
	}
}

func TestCompose_SameDayTips(t *testing.T) {
	// Long day, morning clock: sleep reminder plus time-management nudge.
	recs, _ := Compose(ComposeInput{
		Classification: Classify(9),
		TotalHours:     9,
		IsToday:        true,
		CurrentHour:    9,
	})
	if !containsLine(recs, "sleep") {
		t.Errorf("expected sleep reminder in %v", recs)
	}
	if !containsLine(recs, "Manage your time") {
		t.Errorf("expected morning time-management tip in %v", recs)
	}

	// Evening clock: wind-down instead.
	recs, _ = Compose(ComposeInput{
		Classification: Classify(9),
		TotalHours:     9,
		IsToday:        true,
		CurrentHour:    19,
	})
	if !containsLine(recs, "winding down") {
		t.Errorf("expected wind-down tip in %v", recs)
	}

	// Not today: none of the same-day tips appear.
	recs, _ = Compose(ComposeInput{
		Classification: Classify(9),
		TotalHours:     9,
		IsToday:        false,
		CurrentHour:    9,
	})
	if containsLine(recs, "sleep") || containsLine(recs, "Manage your time") {
		t.Errorf("same-day tips leaked into non-today analysis: %v", recs)
	}
}

func TestCompose_SlotSuggestionsTieredByDuration(t *testing.T) {
	slots := []domain.TimeSlot{
		{Start: "10:00", End: "13:00", Duration: 3},
		{Start: "14:00", End: "15:45", Duration: 1.75},
		{Start: "16:00", End: "17:00", Duration: 1},
		{Start: "18:00", End: "18:30", Duration: 0.5},
	}
	recs, _ := Compose(ComposeInput{
		Classification: Classify(4),
		Slots:          slots,
		TotalHours:     4,
		CurrentHour:    10,
	})

	for _, want := range []string{"read or study", "short video", "coffee", "stretch or meditate"} {
		if !containsLine(recs, want) {
			t.Errorf("missing %q suggestion in %v", want, recs)
		}
	}
	if !containsLine(recs, "plenty of free time") {
		t.Errorf("expected closing remark with >2 slots under 6 hours: %v", recs)
	}
}

func TestCompose_SlotSuggestionsSuppressedOnFullDays(t *testing.T) {
	slots := []domain.TimeSlot{{Start: "10:00", End: "13:00", Duration: 3}}
	recs, _ := Compose(ComposeInput{
		Classification: Classify(9),
		Slots:          slots,
		TotalHours:     9,
		CurrentHour:    10,
	})
	if containsLine(recs, "read or study") {
		t.Errorf("slot suggestions should be suppressed at 9 hours: %v", recs)
	}
}

func TestCompose_FullyOpenDayRemark(t *testing.T) {
	// Empty day: one default slot, zero hours.
	slots := FindGaps(nil)
	recs, _ := Compose(ComposeInput{
		Classification: Classify(0),
		Slots:          slots,
		TotalHours:     0,
		CurrentHour:    10,
	})
	if !containsLine(recs, "fully open") {
		t.Errorf("expected fully-open remark in %v", recs)
	}
}

func TestTimeOfDayTip(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "focused work"},
		{11, "focused work"},
		{12, "after lunch"},
		{14, "after lunch"},
		{15, "plan tomorrow"},
		{17, "plan tomorrow"},
		{18, "relaxing"},
		{23, "relaxing"},
		{0, "relaxing"},
		{4, "relaxing"},
	}
	for _, tt := range tests {
		if got := timeOfDayTip(tt.hour); !strings.Contains(got, tt.want) {
			t.Errorf("timeOfDayTip(%d) = %q, want substring %q", tt.hour, got, tt.want)
		}
	}
}
