package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/geolocate"
	"github.com/mvoloshin/camera_coordination_system/internal/geomodel"
	"github.com/mvoloshin/camera_coordination_system/internal/ledger"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrCameraNotFound is returned when a camera ID does not resolve to a
// registered node.
var ErrCameraNotFound = errors.New("service: camera not found")

// ErrPlaceNotFound is returned when a relocation query matches nothing.
var ErrPlaceNotFound = errors.New("service: place not found")

// CameraService manages the registry of neighborhood camera nodes and the
// map origin they are generated around.
type CameraService interface {
	Seed(ctx context.Context, hint *geolocate.Coordinate) (geolocate.Coordinate, string)
	ListPublic() []models.CameraNode
	ListAll() []models.CameraNode
	Get(id uuid.UUID) (models.CameraNode, error)
	TogglePrivacy(id uuid.UUID) (models.CameraNode, error)
	RelocateByCoordinate(ctx context.Context, coord geolocate.Coordinate) []models.CameraNode
	RelocateByQuery(ctx context.Context, query string) (*geolocate.Place, []models.CameraNode, error)
	Center() geolocate.Coordinate
	Incidents() []models.Incident
	Alerts() []models.CommunityAlert
}

type cameraService struct {
	mu        sync.RWMutex
	nodes     []models.CameraNode
	byID      map[uuid.UUID]int
	incidents []models.Incident
	alerts    []models.CommunityAlert
	center    geolocate.Coordinate

	gen     *geomodel.Generator
	locator *geolocate.Locator
	geo     *geolocate.Geocoder
	ledger  *ledger.Ledger
	logger  *logrus.Logger
}

func NewCameraService(gen *geomodel.Generator, locator *geolocate.Locator, geo *geolocate.Geocoder, ldg *ledger.Ledger, logger *logrus.Logger) CameraService {
	return &cameraService{
		byID:    make(map[uuid.UUID]int),
		gen:     gen,
		locator: locator,
		geo:     geo,
		ledger:  ldg,
		logger:  logger,
	}
}

// Seed resolves the map origin (device hint, IP lookup, then the configured
// default) and generates the initial set of nodes around it.
func (s *cameraService) Seed(ctx context.Context, hint *geolocate.Coordinate) (geolocate.Coordinate, string) {
	coord, source := s.locator.Locate(ctx, hint)
	s.regenerate(coord)
	s.logger.WithFields(logrus.Fields{
		"latitude":  coord.Latitude,
		"longitude": coord.Longitude,
		"source":    source,
	}).Info("Camera registry seeded")
	return coord, source
}

// regenerate replaces the whole registry around a new center. Pending access
// requests that point at nodes which no longer exist are rejected so callers
// never wait on a vanished camera.
func (s *cameraService) regenerate(center geolocate.Coordinate) {
	nodes := s.gen.Cameras(center.Latitude, center.Longitude)
	incidents := s.gen.Incidents(center.Latitude, center.Longitude)
	alerts := s.gen.Alerts()

	s.mu.Lock()
	s.nodes = nodes
	s.byID = make(map[uuid.UUID]int, len(nodes))
	for i, n := range nodes {
		s.byID[n.ID] = i
	}
	s.incidents = incidents
	s.alerts = alerts
	s.center = center
	s.mu.Unlock()

	rejected := 0
	for _, req := range s.ledger.ListAll() {
		if req.Status != models.StatusPending {
			continue
		}
		if _, err := s.Get(req.CameraID); err == nil {
			continue
		}
		if err := s.ledger.Reject(req.ID); err == nil {
			rejected++
		}
	}
	if rejected > 0 {
		s.logger.WithField("count", rejected).Info("Rejected pending requests for vanished cameras")
	}
}

// ListPublic returns nodes visible on the shared map, excluding the ones
// whose owners opted out.
func (s *cameraService) ListPublic() []models.CameraNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CameraNode, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.IsPrivate {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ListAll returns every node including private ones, for the owner surface.
func (s *cameraService) ListAll() []models.CameraNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CameraNode, len(s.nodes))
	copy(out, s.nodes)
	return out
}

func (s *cameraService) Get(id uuid.UUID) (models.CameraNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return models.CameraNode{}, ErrCameraNotFound
	}
	return s.nodes[i], nil
}

// TogglePrivacy flips the owner opt-out flag and returns the updated node.
func (s *cameraService) TogglePrivacy(id uuid.UUID) (models.CameraNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return models.CameraNode{}, ErrCameraNotFound
	}
	s.nodes[i].IsPrivate = !s.nodes[i].IsPrivate
	s.logger.WithFields(logrus.Fields{
		"camera_id":  id,
		"is_private": s.nodes[i].IsPrivate,
	}).Info("Camera privacy toggled")
	return s.nodes[i], nil
}

// RelocateByCoordinate moves the map origin and regenerates everything
// around it.
func (s *cameraService) RelocateByCoordinate(ctx context.Context, coord geolocate.Coordinate) []models.CameraNode {
	s.regenerate(coord)
	s.logger.WithFields(logrus.Fields{
		"latitude":  coord.Latitude,
		"longitude": coord.Longitude,
	}).Info("Camera registry relocated")
	return s.ListAll()
}

// RelocateByQuery geocodes a free-text place name and relocates there.
func (s *cameraService) RelocateByQuery(ctx context.Context, query string) (*geolocate.Place, []models.CameraNode, error) {
	place, err := s.geo.Search(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("service: geocode %q: %w", query, err)
	}
	if place == nil {
		return nil, nil, ErrPlaceNotFound
	}
	nodes := s.RelocateByCoordinate(ctx, place.Coordinate)
	return place, nodes, nil
}

func (s *cameraService) Center() geolocate.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.center
}

// Incidents returns the generated incident zones around the current center.
func (s *cameraService) Incidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// Alerts returns the current community advisories.
func (s *cameraService) Alerts() []models.CommunityAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CommunityAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}
