// Package domain holds the pure types shared across Dayflow.
// A Task is one scheduled entry on a user's calendar day; the analysis
// engine reads tasks, it never writes them.
package domain

import "time"

// TaskStatus tracks task lifecycle.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// TaskPriority is the user-assigned importance of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Category is a closed tag derived from the free-text category label at the
// store boundary. Only the exercise and personal tags carry meaning for the
// analysis engine; every other label maps to CategoryOther.
type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

// ParseCategory maps a raw category label to its closed tag.
// Matching is exact and case-sensitive: "Exercise" is CategoryOther.
func ParseCategory(label string) Category {
	switch label {
	case "exercise":
		return CategoryExercise
	case "personal":
		return CategoryPersonal
	default:
		return CategoryOther
	}
}

// Task is one calendar entry. StartTime and EndTime are wall-clock strings
// in HH:MM:SS form on the same nominal day; StartDate/EndDate are
// YYYY-MM-DD. The raw category label is kept for display alongside the
// parsed tag.
type Task struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category"`
	Tag         Category     `json:"-"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	StartTime   string       `json:"start_time"`
	EndTime     string       `json:"end_time"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`
}

// Countable reports whether the task contributes to workload hours.
// Exercise and personal entries are excluded from the work total.
func (t *Task) Countable() bool {
	return t.Tag != CategoryExercise && t.Tag != CategoryPersonal
}
