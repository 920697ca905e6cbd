package domain

// WorkloadLevel is one of five fixed labels derived from total committed
// hours. The tiers are exclusive on the lower bound: 8.0 hours is still
// "moderate", 8.01 is "heavy".
type WorkloadLevel string

const (
	LevelVeryHeavy WorkloadLevel = "very heavy"
	LevelHeavy     WorkloadLevel = "heavy"
	LevelModerate  WorkloadLevel = "moderate"
	LevelLight     WorkloadLevel = "light"
	LevelFullyFree WorkloadLevel = "fully free"
)

// TimeSlot is one free interval inside the day window. Start and End are
// HH:MM wall-clock strings, Duration is in hours. Slots are built fresh on
// every analysis and never persisted.
type TimeSlot struct {
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Duration    float64 `json:"duration"`
	Description string  `json:"description"`
}

// WorkloadReport is the full result of analyzing one user's day.
// Recommendations and warnings are ordered most important first.
type WorkloadReport struct {
	WorkloadLevel   WorkloadLevel `json:"workload_level"`
	Recommendations []string      `json:"recommendations"`
	Warnings        []string      `json:"warnings"`
	AvailableSlots  []TimeSlot    `json:"available_slots"`
	ExerciseCount   int           `json:"exercise_count"`
	PersonalCount   int           `json:"personal_count"`
}

// Summary is the numeric companion to a WorkloadReport.
// TotalWorkHours is rounded to two decimals; the engine keeps full
// precision internally.
type Summary struct {
	TotalWorkHours float64 `json:"total_work_hours"`
	TotalTasks     int     `json:"total_tasks"`
	ExcludedTasks  int     `json:"excluded_tasks"`
	Date           string  `json:"date"`
}
