// Package routing snaps a schedule's waypoints to the road network via the
// OpenRouteService directions API.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/db"
)

const defaultBaseURL = "https://api.openrouteservice.org"

// fallbackPolyline is drawn when the directions API is unavailable, so the
// map always shows something for a route.
var fallbackPolyline = []db.Coordinate{
	{Latitude: 11.0517, Longitude: 123.9866},
	{Latitude: 11.06, Longitude: 123.99},
	{Latitude: 11.0801, Longitude: 123.9957},
}

// Client calls the OpenRouteService driving directions endpoint.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
	apiKey     string
	baseURL    string
}

func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// FetchRoute returns the road-snapped polyline through the waypoints. On
// any API failure it logs and returns the static fallback polyline instead
// of an error.
func (c *Client) FetchRoute(ctx context.Context, waypoints []db.Coordinate) []db.Coordinate {
	if len(waypoints) < 2 {
		return fallbackPolyline
	}

	// ORS expects [lng, lat] pairs.
	reqBody := directionsRequest{Coordinates: make([][2]float64, len(waypoints))}
	for i, w := range waypoints {
		reqBody.Coordinates[i] = [2]float64{w.Longitude, w.Latitude}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("Failed to encode directions request", zap.Error(err))
		return fallbackPolyline
	}

	url := c.baseURL + "/v2/directions/driving-car/geojson"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to build directions request", zap.Error(err))
		return fallbackPolyline
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Directions request failed, using fallback polyline", zap.Error(err))
		return fallbackPolyline
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Directions API returned non-OK status, using fallback polyline",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return fallbackPolyline
	}

	var parsed directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("Failed to decode directions response, using fallback polyline", zap.Error(err))
		return fallbackPolyline
	}
	if len(parsed.Features) == 0 || len(parsed.Features[0].Geometry.Coordinates) == 0 {
		c.logger.Warn("Directions response contained no geometry, using fallback polyline")
		return fallbackPolyline
	}

	coords := parsed.Features[0].Geometry.Coordinates
	polyline := make([]db.Coordinate, len(coords))
	for i, pair := range coords {
		polyline[i] = db.Coordinate{Latitude: pair[1], Longitude: pair[0]}
	}
	return polyline
}

// withBaseURL is used by tests to point the client at a local server.
func (c *Client) withBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}
