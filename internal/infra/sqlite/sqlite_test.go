package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dayflow-app/dayflow/internal/domain"
	"github.com/google/uuid"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTask(userID int64, date, category, start, end string) domain.Task {
	return domain.Task{
		UserID:    userID,
		Title:     "test task",
		Category:  category,
		StartDate: date,
		EndDate:   date,
		StartTime: start,
		EndTime:   end,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
	}
}

// ─── Users ──────────────────────────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u, err := db.CreateUser(ctx, "mina", "mina@example.com", "$2a$10$hash")
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}
	if u.ID == 0 {
		t.Error("CreateUser() returned zero id")
	}

	got, err := db.UserByEmail(ctx, "mina@example.com")
	if err != nil {
		t.Fatalf("UserByEmail() error: %v", err)
	}
	if got.Username != "mina" || got.ID != u.ID {
		t.Errorf("UserByEmail() = %+v, want id=%d username=mina", got, u.ID)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateUser(ctx, "mina", "mina@example.com", "h1"); err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}
	_, err := db.CreateUser(ctx, "other", "mina@example.com", "h2")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("duplicate CreateUser() error = %v, want ErrEmailTaken", err)
	}
}

func TestUserByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.UserByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("UserByID(42) error = %v, want ErrUserNotFound", err)
	}
}

// ─── Sessions ───────────────────────────────────────────────────────────────

func TestSessions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	s := domain.Session{
		Token:     uuid.NewString(),
		UserID:    1,
		CreatedAt: now,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}
	if err := db.InsertSession(ctx, s); err != nil {
		t.Fatalf("InsertSession() error: %v", err)
	}

	got, err := db.SessionByToken(ctx, s.Token)
	if err != nil {
		t.Fatalf("SessionByToken() error: %v", err)
	}
	if got.UserID != 1 {
		t.Errorf("session user = %d, want 1", got.UserID)
	}

	_, err = db.SessionByToken(ctx, "no-such-token")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("unknown token error = %v, want ErrSessionExpired", err)
	}
}

func TestPruneSessions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	old := domain.Session{Token: uuid.NewString(), UserID: 1, CreatedAt: now.Add(-8 * 24 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)}
	live := domain.Session{Token: uuid.NewString(), UserID: 1, CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour)}
	db.InsertSession(ctx, old)
	db.InsertSession(ctx, live)

	n, err := db.PruneSessions(ctx, now)
	if err != nil {
		t.Fatalf("PruneSessions() error: %v", err)
	}
	if n != 1 {
		t.Errorf("PruneSessions() = %d, want 1", n)
	}
	if _, err := db.SessionByToken(ctx, live.Token); err != nil {
		t.Errorf("live session pruned: %v", err)
	}
}

// ─── Tasks ──────────────────────────────────────────────────────────────────

func TestCreateTask(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := db.CreateTask(ctx, newTask(1, "2025-03-10", "work", "09:00:00", "10:00:00"))
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if created.ID == 0 {
		t.Error("CreateTask() returned zero id")
	}
	if created.Tag != domain.CategoryOther {
		t.Errorf("Tag = %q, want other for label %q", created.Tag, created.Category)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	db := newTestDB(t)

	tk := newTask(1, "2025-03-10", "work", "09:00:00", "10:00:00")
	tk.Title = ""
	_, err := db.CreateTask(context.Background(), tk)
	if !errors.Is(err, domain.ErrEmptyTitle) {
		t.Errorf("CreateTask() error = %v, want ErrEmptyTitle", err)
	}
}

func TestListTasksForUserOnDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Inserted out of order and across users/dates.
	db.CreateTask(ctx, newTask(1, "2025-03-10", "work", "16:00:00", "17:00:00"))
	db.CreateTask(ctx, newTask(1, "2025-03-10", "exercise", "09:00:00", "10:00:00"))
	db.CreateTask(ctx, newTask(1, "2025-03-11", "work", "08:00:00", "09:00:00"))
	db.CreateTask(ctx, newTask(2, "2025-03-10", "work", "07:00:00", "08:00:00"))

	tasks, err := db.ListTasksForUserOnDate(ctx, 1, "2025-03-10")
	if err != nil {
		t.Fatalf("ListTasksForUserOnDate() error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("ListTasksForUserOnDate() = %d tasks, want 2", len(tasks))
	}
	if tasks[0].StartTime != "09:00:00" || tasks[1].StartTime != "16:00:00" {
		t.Errorf("tasks not ordered by start_time: %s, %s", tasks[0].StartTime, tasks[1].StartTime)
	}
	if tasks[0].Tag != domain.CategoryExercise {
		t.Errorf("Tag = %q, want exercise", tasks[0].Tag)
	}
}

func TestUpdateTask(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, _ := db.CreateTask(ctx, newTask(1, "2025-03-10", "work", "09:00:00", "10:00:00"))
	created.Title = "renamed"
	created.Status = domain.TaskCompleted

	if err := db.UpdateTask(ctx, *created); err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}

	got, err := db.TaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("TaskByID() error: %v", err)
	}
	if got.Title != "renamed" || got.Status != domain.TaskCompleted {
		t.Errorf("task after update = %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set by update")
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	db := newTestDB(t)

	tk := newTask(1, "2025-03-10", "work", "09:00:00", "10:00:00")
	tk.ID = 999
	err := db.UpdateTask(context.Background(), tk)
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("UpdateTask() error = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, _ := db.CreateTask(ctx, newTask(1, "2025-03-10", "work", "09:00:00", "10:00:00"))
	if err := db.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask() error: %v", err)
	}
	if _, err := db.TaskByID(ctx, created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("TaskByID() after delete error = %v, want ErrTaskNotFound", err)
	}
	if err := db.DeleteTask(ctx, created.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("second DeleteTask() error = %v, want ErrTaskNotFound", err)
	}
}
