package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwaste/gwaste/pkg/core/services"
)

// SeedRoutesCmd creates the seedRoutes command
func SeedRoutesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seedRoutes",
		Short: "Insert the starter collection schedules",
		Long:  "Insert one starter schedule per in-service truck, skipping route numbers that already exist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := services.SeedRoutes(app.Ctx, app.Store, app.Logger)
			if err != nil {
				return err
			}

			if created == 0 {
				fmt.Println("All starter schedules already present, nothing to do.")
			} else {
				fmt.Printf("Seeded %d schedule(s).\n", created)
			}
			return nil
		},
	}
}
