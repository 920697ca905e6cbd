package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayflow-app/dayflow/internal/daemon"
)

func init() {
	analyzeCmd.Flags().Int64Var(&analyzeUser, "user", 0, "User ID to analyze (required)")
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "Date to analyze, YYYY-MM-DD (default today)")
	analyzeCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(analyzeCmd)
}

var (
	analyzeUser int64
	analyzeDate string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a day's workload",
	Long:  `Analyze the tasks scheduled on a date and print the workload report.`,
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	date := analyzeDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := d.Engine.Analyze(context.Background(), analyzeUser, date)
	if err != nil {
		return err
	}

	fmt.Printf("Workload for %s: %s\n", res.Summary.Date, strings.ToUpper(string(res.Report.WorkloadLevel)))
	fmt.Printf("  %.2f work hours across %d tasks (%d excluded)\n",
		res.Summary.TotalWorkHours, res.Summary.TotalTasks, res.Summary.ExcludedTasks)

	if len(res.Report.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range res.Report.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
	}

	if len(res.Report.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range res.Report.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}

	if len(res.Report.AvailableSlots) > 0 {
		fmt.Println("\nFree slots:")
		for _, s := range res.Report.AvailableSlots {
			fmt.Printf("  %s - %s  (%.1fh)  %s\n", s.Start, s.End, s.Duration, s.Description)
		}
	}

	return nil
}
