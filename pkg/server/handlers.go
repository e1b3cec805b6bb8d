package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/core/schedule"
	"github.com/gwaste/gwaste/pkg/core/services"
	"github.com/gwaste/gwaste/pkg/db"
)

const defaultUpcomingDays = 7

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, identityFrom(r.Context()))
}

func (s *Server) handleListCollectors(w http.ResponseWriter, r *http.Request) {
	collectors, err := s.stores.Collectors.ListCollectors(r.Context())
	if err != nil {
		s.storeFailure(w, "list collectors", err)
		return
	}
	writeJSON(w, http.StatusOK, collectors)
}

func (s *Server) handleAddCollector(w http.ResponseWriter, r *http.Request) {
	var form services.CollectorForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	collector, err := services.AddCollector(r.Context(), s.stores.Collectors, s.logger, form)
	if err != nil {
		s.writeServiceError(w, "add collector", err)
		return
	}
	writeJSON(w, http.StatusCreated, collector)
}

func (s *Server) handleUpdateCollector(w http.ResponseWriter, r *http.Request) {
	var form services.CollectorForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	collector, err := services.UpdateCollector(r.Context(), s.stores.Collectors, s.logger, mux.Vars(r)["id"], form)
	if err != nil {
		s.writeServiceError(w, "update collector", err)
		return
	}
	writeJSON(w, http.StatusOK, collector)
}

func (s *Server) handleRemoveCollector(w http.ResponseWriter, r *http.Request) {
	err := services.RemoveCollector(r.Context(), s.stores.Collectors, s.stores.Routes, s.logger, mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, "remove collector", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.stores.Routes.ListRoutes(r.Context())
	if err != nil {
		s.storeFailure(w, "list routes", err)
		return
	}
	writeJSON(w, http.StatusOK, routes)
}

func (s *Server) handleCreateRoute(w http.ResponseWriter, r *http.Request) {
	s.saveRoute(w, r, "")
}

func (s *Server) handleUpdateRoute(w http.ResponseWriter, r *http.Request) {
	s.saveRoute(w, r, mux.Vars(r)["id"])
}

func (s *Server) saveRoute(w http.ResponseWriter, r *http.Request, editID string) {
	var form schedule.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	route, err := services.SaveRoute(r.Context(), s.stores.Routes, s.logger, form, editID)
	if err != nil {
		s.writeServiceError(w, "save route", err)
		return
	}

	status := http.StatusCreated
	if editID != "" {
		status = http.StatusOK
	}
	writeJSON(w, status, route)
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	days := defaultUpcomingDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			writeError(w, http.StatusBadRequest, "days must be between 1 and 90")
			return
		}
		days = parsed
	}

	dates, err := services.UpcomingCollections(r.Context(), s.stores.Routes, s.logger, mux.Vars(r)["id"], time.Now(), days)
	if err != nil {
		s.writeServiceError(w, "upcoming collections", err)
		return
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format("2006-01-02")
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dates": formatted})
}

// handleDirections returns the road-snapped polyline for a route's
// waypoints. The directions client falls back to a static polyline on API
// failure, so this never errors once the route is loaded.
func (s *Server) handleDirections(w http.ResponseWriter, r *http.Request) {
	route, err := s.stores.Routes.GetRoute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, "load route", err)
		return
	}

	polyline := s.directions.FetchRoute(r.Context(), route.Coordinates)
	writeJSON(w, http.StatusOK, map[string]interface{}{"coordinates": polyline})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.stores.Reports.ListReports(r.Context())
	if err != nil {
		s.storeFailure(w, "list reports", err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleReportStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	id := mux.Vars(r)["id"]
	if err := services.SetReportStatus(r.Context(), s.stores.Reports, s.logger, id, body.Status); err != nil {
		s.writeServiceError(w, "update report status", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": body.Status})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := services.Summary(r.Context(), s.stores.Routes, s.logger)
	if err != nil {
		s.writeServiceError(w, "summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleLatestTrucks(w http.ResponseWriter, r *http.Request) {
	positions, err := s.stores.Trucks.LatestPositions(r.Context())
	if err != nil {
		s.storeFailure(w, "latest truck positions", err)
		return
	}
	if positions == nil {
		positions = []db.TruckPosition{}
	}
	writeJSON(w, http.StatusOK, positions)
}

func (s *Server) handleTruckFeed(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r)
}

// writeServiceError maps service errors onto the API's status codes:
// validation 422, conflicts 409, missing records 404, anything else 502.
func (s *Server) writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": verr.Fields})
		return
	}

	var cerr *services.ConflictError
	if errors.As(err, &cerr) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{"conflicts": cerr.Conflicts})
		return
	}

	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	s.storeFailure(w, op, err)
}

func (s *Server) storeFailure(w http.ResponseWriter, op string, err error) {
	s.logger.Error("Store operation failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusBadGateway, "storage unavailable")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
