package analysis

import "github.com/dayflow-app/dayflow/internal/domain"

// Split is the result of partitioning one day's tasks. Countable tasks
// carry workload hours; excluded tasks are only tallied per category.
type Split struct {
	Countable []domain.Task
	Excluded  []domain.Task
	Exercise  int
	Personal  int
}

// Partition separates work-bearing tasks from excluded life categories.
// Exclusion is decided by the task's parsed tag alone; uncategorized tasks
// count as work.
func Partition(tasks []domain.Task) Split {
	var s Split
	for _, t := range tasks {
		switch t.Tag {
		case domain.CategoryExercise:
			s.Excluded = append(s.Excluded, t)
			s.Exercise++
		case domain.CategoryPersonal:
			s.Excluded = append(s.Excluded, t)
			s.Personal++
		default:
			s.Countable = append(s.Countable, t)
		}
	}
	return s
}
