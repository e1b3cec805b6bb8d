package services

import (
	"context"
	"fmt"

	"github.com/gwaste/gwaste/pkg/db"
)

// mockCollectorStore implements a test double for db.CollectorStore
type mockCollectorStore struct {
	collectors []db.Collector
	created    []*db.Collector
	updated    map[string]*db.Collector
	deleted    []string
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error
}

func (m *mockCollectorStore) ListCollectors(ctx context.Context) ([]db.Collector, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.collectors, nil
}

func (m *mockCollectorStore) GetCollector(ctx context.Context, id string) (*db.Collector, error) {
	for i := range m.collectors {
		if m.collectors[i].ID == id {
			c := m.collectors[i]
			return &c, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockCollectorStore) CreateCollector(ctx context.Context, c *db.Collector) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.created = append(m.created, c)
	return fmt.Sprintf("collector-%d", len(m.created)), nil
}

func (m *mockCollectorStore) UpdateCollector(ctx context.Context, id string, c *db.Collector) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.updated == nil {
		m.updated = map[string]*db.Collector{}
	}
	m.updated[id] = c
	return nil
}

func (m *mockCollectorStore) DeleteCollector(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// mockRouteStore implements a test double for db.RouteStore
type mockRouteStore struct {
	routes         []db.Route
	created        []*db.Route
	updated        map[string]*db.Route
	deletedDrivers []string
	listErr        error
	createErr      error
	updateErr      error
}

func (m *mockRouteStore) ListRoutes(ctx context.Context) ([]db.Route, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.routes, nil
}

func (m *mockRouteStore) GetRoute(ctx context.Context, id string) (*db.Route, error) {
	for i := range m.routes {
		if m.routes[i].ID == id {
			r := m.routes[i]
			return &r, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *mockRouteStore) CreateRoute(ctx context.Context, r *db.Route) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.created = append(m.created, r)
	return fmt.Sprintf("route-%d", len(m.created)), nil
}

func (m *mockRouteStore) UpdateRoute(ctx context.Context, id string, r *db.Route) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.updated == nil {
		m.updated = map[string]*db.Route{}
	}
	m.updated[id] = r
	return nil
}

func (m *mockRouteStore) DeleteRoutesForDriver(ctx context.Context, driver string) (int, error) {
	m.deletedDrivers = append(m.deletedDrivers, driver)
	n := 0
	for _, r := range m.routes {
		if r.Driver == driver {
			n++
		}
	}
	return n, nil
}

// mockReportStore implements a test double for db.ReportStore
type mockReportStore struct {
	reports   []db.Report
	statuses  map[string]string
	updateErr error
}

func (m *mockReportStore) ListReports(ctx context.Context) ([]db.Report, error) {
	return m.reports, nil
}

func (m *mockReportStore) UpdateReportStatus(ctx context.Context, id, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.statuses == nil {
		m.statuses = map[string]string{}
	}
	m.statuses[id] = status
	return nil
}
