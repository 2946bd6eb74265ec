package models

import (
	"time"

	"github.com/google/uuid"
)

// CommunityAlert is a neighborhood-wide advisory shown on the homeowner surface.
type CommunityAlert struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}
