package commands

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gwaste/gwaste/pkg/tracker"
)

// SimulateTrucksCmd creates the simulateTrucks command
func SimulateTrucksCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulateTrucks",
		Short: "Drive simulated trucks along every route polyline",
		Long:  "Walk each route's polyline at a fixed cadence, recording a synthetic GPS ping per step. Runs until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Telemetry == nil {
				return fmt.Errorf("no telemetry database configured; set postgresDSN")
			}

			intervalSeconds, _ := cmd.Flags().GetInt("interval")
			if intervalSeconds == 0 {
				intervalSeconds = app.Cfg.SimulationIntervalSeconds
			}

			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hub := tracker.NewHub(app.Logger)
			go hub.Run(ctx)

			sim := tracker.NewSimulator(app.Store, app.Telemetry, hub, app.Logger, time.Duration(intervalSeconds)*time.Second)
			return sim.Run(ctx)
		},
	}

	cmd.Flags().Int("interval", 0, "Seconds between simulated pings (overrides config)")

	return cmd
}
