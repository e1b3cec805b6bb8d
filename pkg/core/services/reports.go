package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/core/schedule"
	"github.com/gwaste/gwaste/pkg/db"
)

// NextReportStatus flips a report between resolved and unresolved. Pending
// counts as unresolved, so the first toggle always resolves.
func NextReportStatus(current string) string {
	if current == model.ReportResolved {
		return model.ReportUnresolved
	}
	return model.ReportResolved
}

// SetReportStatus marks a report resolved or unresolved.
func SetReportStatus(ctx context.Context, store db.ReportStore, logger *zap.Logger, id, status string) error {
	if status != model.ReportResolved && status != model.ReportUnresolved {
		return &ValidationError{Fields: schedule.Errors{"status": "Status must be resolved or unresolved"}}
	}

	if err := store.UpdateReportStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	logger.Info("Report status updated",
		zap.String("id", id),
		zap.String("status", status))
	return nil
}
