package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/model"
	"github.com/gwaste/gwaste/pkg/core/roster"
	"github.com/gwaste/gwaste/pkg/core/schedule"
	"github.com/gwaste/gwaste/pkg/db"
)

// CollectorForm is the add/edit collector submission.
type CollectorForm struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Contact   string          `json:"contact"`
	Crew      []db.CrewMember `json:"crew"`
	Status    string          `json:"status,omitempty"`
}

// AddCollector validates the form, rejects names that collide with the
// existing roster, and persists a new active collector. The derived driver
// name is always first + " " + last.
func AddCollector(ctx context.Context, store db.CollectorStore, logger *zap.Logger, form CollectorForm) (*db.Collector, error) {
	if errs := validateCollectorForm(form); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	existing, err := store.ListCollectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collectors: %w", err)
	}

	if errs := checkRosterCollisions(form, existing, ""); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	collector := collectorFromForm(form)
	collector.Status = model.StatusActive

	id, err := store.CreateCollector(ctx, collector)
	if err != nil {
		return nil, fmt.Errorf("failed to create collector: %w", err)
	}
	collector.ID = id

	logger.Info("Collector added",
		zap.String("id", id),
		zap.String("driver", collector.Driver),
		zap.Int("crew_size", len(collector.Crew)))

	return collector, nil
}

// UpdateCollector applies an edit: status toggle, crew edits, contact or
// name changes. The collector under edit is excluded from the collision
// check so it never conflicts with itself.
func UpdateCollector(ctx context.Context, store db.CollectorStore, logger *zap.Logger, id string, form CollectorForm) (*db.Collector, error) {
	if errs := validateCollectorForm(form); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if form.Status != model.StatusActive && form.Status != model.StatusInactive {
		return nil, &ValidationError{Fields: schedule.Errors{"status": "Status must be active or inactive"}}
	}

	existing, err := store.ListCollectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collectors: %w", err)
	}

	if errs := checkRosterCollisions(form, existing, id); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	collector := collectorFromForm(form)
	collector.ID = id
	collector.Status = form.Status

	if err := store.UpdateCollector(ctx, id, collector); err != nil {
		return nil, fmt.Errorf("failed to update collector: %w", err)
	}

	logger.Info("Collector updated",
		zap.String("id", id),
		zap.String("driver", collector.Driver),
		zap.String("status", collector.Status))

	return collector, nil
}

// RemoveCollector deletes a collector and every route assigned to their
// driver name.
func RemoveCollector(ctx context.Context, collectors db.CollectorStore, routes db.RouteStore, logger *zap.Logger, id string) error {
	collector, err := collectors.GetCollector(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load collector: %w", err)
	}

	removed, err := routes.DeleteRoutesForDriver(ctx, collector.Driver)
	if err != nil {
		return fmt.Errorf("failed to delete routes for driver: %w", err)
	}

	if err := collectors.DeleteCollector(ctx, id); err != nil {
		return fmt.Errorf("failed to delete collector: %w", err)
	}

	logger.Info("Collector removed",
		zap.String("id", id),
		zap.String("driver", collector.Driver),
		zap.Int("routes_removed", removed))

	return nil
}

func validateCollectorForm(form CollectorForm) schedule.Errors {
	errs := schedule.Errors{}
	if strings.TrimSpace(form.FirstName) == "" {
		errs["firstName"] = "First name required"
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs["lastName"] = "Last name required"
	}
	if strings.TrimSpace(form.Contact) == "" {
		errs["contact"] = "Contact number required"
	}
	if len(roster.FilterCrew(form.Crew)) == 0 {
		errs["crew"] = "At least one crew member with first and last name"
	}
	return errs
}

// checkRosterCollisions rejects a driver or crew name already present on
// the roster, comparing normalized forms.
func checkRosterCollisions(form CollectorForm, existing []db.Collector, excludeID string) schedule.Errors {
	errs := schedule.Errors{}
	names := roster.BuildNameSet(existing, excludeID)

	if _, taken := names[roster.Normalize(form.FirstName, form.LastName)]; taken {
		errs["driver"] = "A collector with this driver name already exists."
	}
	for _, m := range roster.FilterCrew(form.Crew) {
		if _, taken := names[roster.Normalize(m.FirstName, m.LastName)]; taken {
			errs["crew"] = fmt.Sprintf("%s is already on the roster", roster.MemberName(m))
			break
		}
	}
	return errs
}

func collectorFromForm(form CollectorForm) *db.Collector {
	first := strings.TrimSpace(form.FirstName)
	last := strings.TrimSpace(form.LastName)
	return &db.Collector{
		FirstName: first,
		LastName:  last,
		Driver:    first + " " + last,
		Contact:   strings.TrimSpace(form.Contact),
		Crew:      roster.FilterCrew(form.Crew),
	}
}
