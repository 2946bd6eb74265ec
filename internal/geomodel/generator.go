package geomodel

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
)

// NodeCount is the size of the synthetic node set generated around a center.
const NodeCount = 15

var ownerNames = []string{
	"John Doe", "Jane Smith", "Robert Johnson", "Emily Davis",
	"Michael Chen", "Sarah Wilson", "David Brown",
}

var streetNames = []string{
	"Market St", "Mission St", "Van Ness", "Castro St",
	"Main St", "Broadway", "Park Ave",
}

// Generator produces synthetic camera nodes and incidents scattered
// around a center coordinate. It is the only source of nodes; the node
// set is regenerated wholesale when the map is relocated.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded for reproducible output in tests; pass
// time-based seeds in production wiring.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Cameras generates NodeCount nodes with random offsets within roughly
// 2 km of the center. About 70% have footage available and about 20%
// are privacy-flagged.
func (g *Generator) Cameras(centerLat, centerLng float64) []models.CameraNode {
	nodes := make([]models.CameraNode, 0, NodeCount)
	for i := 0; i < NodeCount; i++ {
		owner := ownerNames[i%len(ownerNames)]
		if i >= len(ownerNames) {
			owner = fmt.Sprintf("%s %d", owner, i)
		}

		nodes = append(nodes, models.CameraNode{
			ID:           uuid.New(),
			OwnerName:    owner,
			Address:      fmt.Sprintf("%d %s", g.rng.Intn(900)+100, streetNames[i%len(streetNames)]),
			Latitude:     centerLat + (g.rng.Float64()-0.5)*0.04,
			Longitude:    centerLng + (g.rng.Float64()-0.5)*0.04,
			Contact:      fmt.Sprintf("555-01%02d", i),
			HasFootage:   g.rng.Float64() > 0.3,
			RegisteredAt: time.Now().UTC().AddDate(0, 0, -g.rng.Intn(365)),
			IsPrivate:    g.rng.Float64() > 0.8,
		})
	}
	return nodes
}

// Incidents seeds the two reference incidents near the center.
func (g *Generator) Incidents(centerLat, centerLng float64) []models.Incident {
	now := time.Now().UTC()
	return []models.Incident{
		{
			ID:           uuid.New(),
			Type:         "Theft",
			Description:  "Vehicle break-in reported",
			Latitude:     centerLat + 0.0006,
			Longitude:    centerLng + 0.0014,
			RadiusMeters: 300,
			Status:       "active",
			CreatedAt:    now.Add(-10 * time.Minute),
			UpdatedAt:    now.Add(-10 * time.Minute),
		},
		{
			ID:           uuid.New(),
			Type:         "Assault",
			Description:  "Physical altercation in public park",
			Latitude:     centerLat - 0.0134,
			Longitude:    centerLng - 0.0146,
			RadiusMeters: 500,
			Status:       "active",
			CreatedAt:    now.Add(-time.Hour),
			UpdatedAt:    now.Add(-time.Hour),
		},
	}
}

// Alerts seeds the community advisories shown on the homeowner surface.
func (g *Generator) Alerts() []models.CommunityAlert {
	now := time.Now().UTC()
	return []models.CommunityAlert{
		{
			ID:        uuid.New(),
			Title:     "Suspicious Vehicle",
			Message:   "Blue Sedan with plate ending 456 seen circling blocks near Market St.",
			Severity:  "medium",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Title:     "Package Thief",
			Message:   "Person in red hoodie reported stealing packages in Mission District.",
			Severity:  "low",
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}
