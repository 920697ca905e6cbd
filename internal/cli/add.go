package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayflow-app/dayflow/internal/daemon"
	"github.com/dayflow-app/dayflow/internal/domain"
)

func init() {
	addCmd.Flags().Int64Var(&addUser, "user", 0, "User ID the task belongs to (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "other", "Task category (exercise, personal, or anything else)")
	addCmd.Flags().StringVar(&addDate, "date", "", "Task date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addStart, "start", "09:00:00", "Start time, HH:MM:SS")
	addCmd.Flags().StringVar(&addEnd, "end", "10:00:00", "End time, HH:MM:SS")
	addCmd.Flags().StringVar(&addPriority, "priority", "medium", "Priority (low, medium, high)")
	addCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(addCmd)
}

var (
	addUser     int64
	addCategory string
	addDate     string
	addStart    string
	addEnd      string
	addPriority string
)

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a task to the schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	task := domain.Task{
		UserID:    addUser,
		Title:     args[0],
		Category:  addCategory,
		StartDate: date,
		EndDate:   date,
		StartTime: addStart,
		EndTime:   addEnd,
		Priority:  domain.TaskPriority(addPriority),
		Status:    domain.TaskPending,
	}

	created, err := d.DB.CreateTask(context.Background(), task)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s on %s (%s - %s)\n",
		created.ID, created.Title, created.StartDate, created.StartTime, created.EndTime)
	return nil
}
