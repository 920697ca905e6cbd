package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dayflow-app/dayflow/internal/daemon"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm TASK_ID",
	Short: "Remove a task from the schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.DB.DeleteTask(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("Removed task %d\n", id)
	return nil
}
