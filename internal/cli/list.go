package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dayflow-app/dayflow/internal/daemon"
	"github.com/dayflow-app/dayflow/internal/domain"
)

func init() {
	listCmd.Flags().Int64Var(&listUser, "user", 0, "User ID whose tasks to list (required)")
	listCmd.Flags().StringVar(&listDate, "date", "", "Only show tasks on this date, YYYY-MM-DD")
	listCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(listCmd)
}

var (
	listUser int64
	listDate string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List scheduled tasks",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	var tasks []domain.Task
	if listDate != "" {
		tasks, err = d.DB.ListTasksForUserOnDate(ctx, listUser, listDate)
	} else {
		tasks, err = d.DB.ListTasksForUser(ctx, listUser)
	}
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks scheduled. Run 'dayflow add <title>' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDATE\tSTART\tEND\tSTATUS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Category, t.StartDate, t.StartTime, t.EndTime, t.Status)
	}
	return w.Flush()
}
