package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of an access request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// AccessRequest represents one footage request directed at exactly one
// camera node. VideoRef and BlobID are set together, and only once the
// request is approved.
type AccessRequest struct {
	ID           uuid.UUID     `json:"id"`
	CameraID     uuid.UUID     `json:"camera_id"`
	CreatedAt    time.Time     `json:"created_at"`
	IncidentTime string        `json:"incident_time"`
	Reason       string        `json:"reason"`
	Status       RequestStatus `json:"status"`
	VideoRef     string        `json:"video_ref,omitempty"`
	BlobID       uuid.UUID     `json:"blob_id,omitempty"`
}
