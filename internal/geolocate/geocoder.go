package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Place is one geocoding hit.
type Place struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
}

// Geocoder resolves a free-text query to a coordinate. An empty result
// set is a "not found" outcome (nil place, nil error), not an error.
type Geocoder struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

func NewGeocoder(baseURL string, timeout time.Duration, logger *logrus.Logger) *Geocoder {
	return &Geocoder{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

type geocodeHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search returns the first hit for the query, or nil when nothing matched.
func (g *Geocoder) Search(ctx context.Context, query string) (*Place, error) {
	log := g.logger.WithFields(logrus.Fields{
		"component": "geocoder",
		"query":     query,
	})

	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", g.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Geocode request failed")
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var hits []geocodeHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(hits) == 0 {
		log.Info("No geocode results")
		return nil, nil
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode longitude: %w", err)
	}

	// The display name is a long comma-separated chain; the leading
	// segment is the place itself.
	name := hits[0].DisplayName
	if idx := strings.Index(name, ","); idx > 0 {
		name = name[:idx]
	}

	return &Place{
		Name:       name,
		Coordinate: Coordinate{Latitude: lat, Longitude: lon},
	}, nil
}
