// Package analysis implements the workload analysis engine.
// Given one user's tasks for one calendar day it separates work from
// excluded life categories, totals the committed hours, classifies the
// load, finds the free slots in the day window, and turns all of that into
// an ordered list of recommendations.
package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dayflow-app/dayflow/internal/domain"
	"github.com/dayflow-app/dayflow/internal/infra/metrics"
)

// Engine analyzes a user's calendar day. It is stateless: every call reads
// the task list fresh and recomputes the full report, so concurrent calls
// never coordinate and results are never cached.
type Engine struct {
	store domain.TaskLister
	now   func() time.Time
}

// NewEngine creates an engine reading from the given task store. The now
// function supplies the invocation wall clock for the same-day and
// time-of-day tips; pass nil for time.Now. Tests fix it to a constant.
func NewEngine(store domain.TaskLister, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: store, now: now}
}

// Result pairs a workload report with its numeric summary.
type Result struct {
	Report  domain.WorkloadReport `json:"report"`
	Summary domain.Summary        `json:"summary"`
}

// Analyze produces the workload report for one user and date (YYYY-MM-DD).
// Missing or malformed arguments yield ErrInvalidArgument; a failed store
// read yields ErrStoreUnavailable with the cause attached. There is no
// partial result: either the full report comes back or an error does.
func (e *Engine) Analyze(ctx context.Context, userID int64, date string) (*Result, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id", domain.ErrInvalidArgument)
	}
	if date == "" {
		return nil, fmt.Errorf("%w: date", domain.ErrInvalidArgument)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidArgument, date)
	}

	started := time.Now()

	tasks, err := e.store.ListTasksForUserOnDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	split := Partition(tasks)

	// Full precision internally; the summary alone rounds.
	var total float64
	for _, t := range split.Countable {
		total += Hours(t.StartTime, t.EndTime)
	}

	sorted := make([]domain.Task, len(split.Countable))
	copy(sorted, split.Countable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	cls := Classify(total)
	slots := FindGaps(sorted)

	now := e.now()
	recs, warns := Compose(ComposeInput{
		Classification: cls,
		Countable:      sorted,
		Slots:          slots,
		TotalHours:     total,
		ExerciseCount:  split.Exercise,
		PersonalCount:  split.Personal,
		IsToday:        now.Format("2006-01-02") == date,
		CurrentHour:    now.Hour(),
	})

	metrics.AnalysesTotal.WithLabelValues(string(cls.Level)).Inc()
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	metrics.FreeSlotsFound.Add(float64(len(slots)))

	return &Result{
		Report: domain.WorkloadReport{
			WorkloadLevel:   cls.Level,
			Recommendations: recs,
			Warnings:        warns,
			AvailableSlots:  slots,
			ExerciseCount:   split.Exercise,
			PersonalCount:   split.Personal,
		},
		Summary: domain.Summary{
			TotalWorkHours: math.Round(total*100) / 100,
			TotalTasks:     len(tasks),
			ExcludedTasks:  len(split.Excluded),
			Date:           date,
		},
	}, nil
}
