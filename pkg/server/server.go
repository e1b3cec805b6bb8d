// Package server exposes the dashboard REST API and the live truck feed.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/db"
	"github.com/gwaste/gwaste/pkg/tracker"
)

// TokenVerifier checks a Firebase ID token and resolves the caller.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*db.Identity, error)
}

// DirectionsClient snaps a route's waypoints to the road network.
type DirectionsClient interface {
	FetchRoute(ctx context.Context, waypoints []db.Coordinate) []db.Coordinate
}

// Stores bundles the persistence interfaces the handlers need. TruckStore
// may be nil when no telemetry database is configured.
type Stores struct {
	Collectors db.CollectorStore
	Routes     db.RouteStore
	Reports    db.ReportStore
	Trucks     db.TruckStore
}

// Server is the dashboard HTTP API.
type Server struct {
	router     *mux.Router
	stores     Stores
	verifier   TokenVerifier
	hub        *tracker.Hub
	directions DirectionsClient
	logger     *zap.Logger
}

// New builds the API. hub and directions may be nil, which disables the
// websocket feed and the directions endpoint respectively.
func New(stores Stores, verifier TokenVerifier, hub *tracker.Hub, directions DirectionsClient, logger *zap.Logger) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		stores:     stores,
		verifier:   verifier,
		hub:        hub,
		directions: directions,
		logger:     logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware)

	api.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)

	api.HandleFunc("/collectors", s.handleListCollectors).Methods(http.MethodGet)
	api.HandleFunc("/collectors", s.handleAddCollector).Methods(http.MethodPost)
	api.HandleFunc("/collectors/{id}", s.handleUpdateCollector).Methods(http.MethodPut)
	api.HandleFunc("/collectors/{id}", s.handleRemoveCollector).Methods(http.MethodDelete)

	api.HandleFunc("/routes", s.handleListRoutes).Methods(http.MethodGet)
	api.HandleFunc("/routes", s.handleCreateRoute).Methods(http.MethodPost)
	api.HandleFunc("/routes/{id}", s.handleUpdateRoute).Methods(http.MethodPut)
	api.HandleFunc("/routes/{id}/upcoming", s.handleUpcoming).Methods(http.MethodGet)
	if s.directions != nil {
		api.HandleFunc("/routes/{id}/directions", s.handleDirections).Methods(http.MethodGet)
	}

	api.HandleFunc("/reports", s.handleListReports).Methods(http.MethodGet)
	api.HandleFunc("/reports/{id}/status", s.handleReportStatus).Methods(http.MethodPut)

	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)

	if s.stores.Trucks != nil {
		api.HandleFunc("/trucks", s.handleLatestTrucks).Methods(http.MethodGet)
	}
	if s.hub != nil {
		s.router.HandleFunc("/ws/trucks", s.handleTruckFeed).Methods(http.MethodGet)
	}
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains connections.
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Dashboard API listening", zap.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
