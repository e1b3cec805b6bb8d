package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/internal/config"
	"github.com/gwaste/gwaste/pkg/firestore"
	"github.com/gwaste/gwaste/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg   *config.Config
	Store *firestore.Store
	// Telemetry is nil when no Postgres DSN is configured; truck features
	// are disabled in that case.
	Telemetry *postgres.DB
	Logger    *zap.Logger
	Ctx       context.Context
}
