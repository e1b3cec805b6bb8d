package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwaste/gwaste/pkg/core/services"
)

// SummaryCmd creates the summary command
func SummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := services.Summary(app.Ctx, app.Store, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nCollection schedule summary\n\n")
			fmt.Printf("Total schedules: %d\n", s.TotalSchedules)
			fmt.Printf("Unique routes:   %d\n", s.UniqueRouteCount)
			fmt.Printf("Unique drivers:  %d\n", s.UniqueDriverCount)
			fmt.Printf("Total crew:      %d\n\n", s.TotalCrew)

			fmt.Printf("Schedules by waste type:\n")
			for wasteType, count := range s.CountByType {
				fmt.Printf("  %-12s %d\n", wasteType, count)
			}
			fmt.Println()

			return nil
		},
	}
}
