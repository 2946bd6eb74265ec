package models

import (
	"time"

	"github.com/google/uuid"
)

// CameraNode represents a registered homeowner camera endpoint.
// The only in-session mutation is the privacy toggle; nodes are never
// deleted, only regenerated wholesale when the map is relocated.
type CameraNode struct {
	ID           uuid.UUID `json:"id"`
	OwnerName    string    `json:"owner_name"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Contact      string    `json:"contact"`
	HasFootage   bool      `json:"has_footage"`
	RegisteredAt time.Time `json:"registered_at"`
	IsPrivate    bool      `json:"is_private"`
}
