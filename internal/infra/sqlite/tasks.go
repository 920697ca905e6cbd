package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/dayflow-app/dayflow/internal/domain"
)

// ─── Task Repository ────────────────────────────────────────────────────────

const taskColumns = `id, user_id, title, description, category, start_date, end_date,
	start_time, end_time, priority, status, created_at, updated_at`

// CreateTask inserts a task and returns it with its assigned id.
func (d *DB) CreateTask(ctx context.Context, t domain.Task) (*domain.Task, error) {
	if t.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	now := time.Now()
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, category, start_date, end_date,
			start_time, end_time, priority, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.UserID, t.Title, t.Description, t.Category, t.StartDate, t.EndDate,
		t.StartTime, t.EndTime, t.Priority, t.Status, now.Unix(),
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return d.TaskByID(ctx, id)
}

// TaskByID retrieves a single task.
func (d *DB) TaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

// ListTasksForUser returns every task belonging to a user, ordered by date
// then start time.
func (d *DB) ListTasksForUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ?
		 ORDER BY start_date ASC, start_time ASC`, userID)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// ListTasksForUserOnDate returns one user's tasks for a single date,
// ordered by start time ascending. This is the read the analysis engine
// performs.
func (d *DB) ListTasksForUserOnDate(ctx context.Context, userID int64, date string) ([]domain.Task, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? AND start_date = ?
		 ORDER BY start_time ASC`, userID, date)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// UpdateTask rewrites a task's mutable fields.
func (d *DB) UpdateTask(ctx context.Context, t domain.Task) error {
	if t.Title == "" {
		return domain.ErrEmptyTitle
	}
	res, err := d.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, category = ?, start_date = ?,
			end_date = ?, start_time = ?, end_time = ?, priority = ?, status = ?,
			updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, t.Category, t.StartDate, t.EndDate,
		t.StartTime, t.EndTime, t.Priority, t.Status, time.Now().Unix(), t.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (d *DB) DeleteTask(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	defer rows.Close()
	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var createdAt int64
	var updatedAt sql.NullInt64
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Category,
		&t.StartDate, &t.EndDate, &t.StartTime, &t.EndTime,
		&t.Priority, &t.Status, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	t.CreatedAt = time.Unix(createdAt, 0)
	if updatedAt.Valid {
		t.UpdatedAt = time.Unix(updatedAt.Int64, 0)
	}
	// Ingestion boundary: the free-text label becomes a closed tag here,
	// so the analysis engine never compares raw strings.
	t.Tag = domain.ParseCategory(t.Category)
	return &t, nil
}
