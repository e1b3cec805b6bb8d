package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/cmd/gwaste/commands"
	"github.com/gwaste/gwaste/internal/config"
	"github.com/gwaste/gwaste/pkg/firestore"
	"github.com/gwaste/gwaste/pkg/postgres"
	"github.com/gwaste/gwaste/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gwaste",
		Short: "G-Waste dashboard backend - Manage waste collection schedules",
		Long:  `The backend for the G-Waste municipal waste-collection dashboard: collector rosters, collection schedules, citizen reports, and live truck tracking.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.ServeCmd(appRef()))
	rootCmd.AddCommand(commands.SeedRoutesCmd(appRef()))
	rootCmd.AddCommand(commands.SimulateTrucksCmd(appRef()))
	rootCmd.AddCommand(commands.SummaryCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext; commands hold the pointer while
// initApp fills it in during PersistentPreRunE.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, the document store, and telemetry
func initApp() error {
	a := appRef()
	a.Ctx = context.Background()

	var err error
	a.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.Logger.Info("Starting application", zap.String("environment", env))

	a.Logger.Info("Loading configuration")
	a.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Logger.Debug("Configuration loaded successfully")

	a.Logger.Info("Connecting to Firestore", zap.String("project_id", a.Cfg.ProjectID))
	a.Store, err = firestore.New(a.Ctx, a.Cfg.ProjectID, a.Cfg.CredentialsFile)
	if err != nil {
		return fmt.Errorf("failed to connect to Firestore: %w", err)
	}
	a.Logger.Debug("Firestore connected successfully")

	if a.Cfg.PostgresDSN != "" {
		a.Logger.Info("Connecting to telemetry database")
		a.Telemetry, err = postgres.NewDB(a.Ctx, a.Cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("failed to connect to telemetry database: %w", err)
		}
		if err := a.Telemetry.RunMigrations(a.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		a.Logger.Debug("Telemetry database ready")
	} else {
		a.Logger.Info("No telemetry database configured, truck features disabled")
	}

	return nil
}
