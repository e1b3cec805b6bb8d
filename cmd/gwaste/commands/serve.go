package commands

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/routing"
	"github.com/gwaste/gwaste/pkg/server"
	"github.com/gwaste/gwaste/pkg/tracker"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		Long:  "Serve the REST API, the live truck websocket feed, and optionally the GPS ingest and truck simulation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Cfg.ListenAddr
			}

			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hub := tracker.NewHub(app.Logger)
			go hub.Run(ctx)

			stores := server.Stores{
				Collectors: app.Store,
				Routes:     app.Store,
				Reports:    app.Store,
			}
			if app.Telemetry != nil {
				stores.Trucks = app.Telemetry
			}

			if app.Telemetry != nil && app.Cfg.PubsubSubscription != "" {
				client, err := pubsub.NewClient(ctx, app.Cfg.ProjectID)
				if err != nil {
					return fmt.Errorf("failed to create pubsub client: %w", err)
				}
				defer client.Close()

				ingestor := tracker.NewIngestor(client, app.Cfg.PubsubSubscription, app.Telemetry, hub, app.Logger)
				go func() {
					if err := ingestor.Run(ctx); err != nil {
						app.Logger.Error("GPS ingest stopped", zap.Error(err))
					}
				}()
			}

			if app.Telemetry != nil && app.Cfg.SimulateTrucks {
				interval := time.Duration(app.Cfg.SimulationIntervalSeconds) * time.Second
				sim := tracker.NewSimulator(app.Store, app.Telemetry, hub, app.Logger, interval)
				go func() {
					if err := sim.Run(ctx); err != nil && ctx.Err() == nil {
						app.Logger.Error("Truck simulation stopped", zap.Error(err))
					}
				}()
			}

			var directions server.DirectionsClient
			if app.Cfg.ORSAPIKey != "" {
				directions = routing.NewClient(app.Cfg.ORSAPIKey, app.Logger)
			}

			srv := server.New(stores, app.Store, hub, directions, app.Logger)
			if err := srv.Start(ctx, addr); err != nil && ctx.Err() == nil {
				return fmt.Errorf("server failed: %w", err)
			}

			app.Logger.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides config)")

	return cmd
}
