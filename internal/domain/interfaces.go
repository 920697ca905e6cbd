package domain

import "context"

// TaskLister is the collaborator the analysis engine reads from.
// Implementations must return tasks already scoped to the one user and date;
// order does not matter, the engine sorts.
type TaskLister interface {
	ListTasksForUserOnDate(ctx context.Context, userID int64, date string) ([]Task, error)
}
