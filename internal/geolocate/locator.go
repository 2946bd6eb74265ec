package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Coordinate is a geographic point in floating-point degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator resolves the coordinate used to seed the node generator via a
// two-tier fallback: a device-provided hint, then an IP-geolocation
// lookup, then a fixed default. A failed tier logs and falls through;
// no tier failure ever surfaces to the caller.
type Locator struct {
	httpClient *http.Client
	ipURL      string
	fallback   Coordinate
	logger     *logrus.Logger
}

func NewLocator(ipURL string, fallback Coordinate, timeout time.Duration, logger *logrus.Logger) *Locator {
	return &Locator{
		httpClient: &http.Client{Timeout: timeout},
		ipURL:      ipURL,
		fallback:   fallback,
		logger:     logger,
	}
}

type ipResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
}

// Locate returns the seeding coordinate and a human-readable source tag
// ("device", "ip:<city>" or "default").
func (l *Locator) Locate(ctx context.Context, hint *Coordinate) (Coordinate, string) {
	log := l.logger.WithField("component", "geolocate")

	if hint != nil {
		return *hint, "device"
	}

	coord, city, err := l.lookupIP(ctx)
	if err != nil {
		log.WithError(err).Warn("IP geolocation failed, falling back to default coordinate")
		return l.fallback, "default"
	}

	source := "ip"
	if city != "" {
		source = "ip:" + city
	}
	log.WithField("city", city).Info("Located via IP")
	return coord, source
}

func (l *Locator) lookupIP(ctx context.Context) (Coordinate, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.ipURL, nil)
	if err != nil {
		return Coordinate{}, "", fmt.Errorf("build IP lookup request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Coordinate{}, "", fmt.Errorf("IP lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, "", fmt.Errorf("IP lookup status %d", resp.StatusCode)
	}

	var decoded ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Coordinate{}, "", fmt.Errorf("decode IP lookup response: %w", err)
	}
	if decoded.Latitude == nil || decoded.Longitude == nil {
		return Coordinate{}, "", fmt.Errorf("IP lookup response missing coordinates")
	}

	return Coordinate{Latitude: *decoded.Latitude, Longitude: *decoded.Longitude}, decoded.City, nil
}
