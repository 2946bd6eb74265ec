package v1

import (
	"time"

	"github.com/google/uuid"
)

// CameraResponse describes one camera node on the shared map.
// @Description Camera node visible on the neighborhood map
type CameraResponse struct {
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

// LocateRequest carries an optional device coordinate hint for seeding.
// @Description Optional device coordinate used to center the map
type LocateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// RelocateRequest moves the map origin, either to an explicit coordinate
// or to the first geocoding hit of a free-text query.
// @Description Map relocation request
type RelocateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Query     string   `json:"query,omitempty"`
}

// MapResponse is the full regenerated map state.
// @Description Map state after seeding or relocation
type MapResponse struct {
	CenterLatitude  float64            `json:"center_latitude"`
	CenterLongitude float64            `json:"center_longitude"`
	Source          string             `json:"source,omitempty"`
	PlaceName       string             `json:"place_name,omitempty"`
	Cameras         []CameraResponse   `json:"cameras"`
	Incidents       []IncidentResponse `json:"incidents"`
	Alerts          []AlertResponse    `json:"alerts"`
}

// CreateAccessRequest submits a footage access request against a camera.
// @Description Footage access request submission
type CreateAccessRequest struct {
	CameraID     uuid.UUID `json:"camera_id" validate:"required"`
	Reason       string    `json:"reason" validate:"required,min=3,max=500"`
	IncidentTime string    `json:"incident_time" validate:"required"`
}

// AccessRequestResponse describes one entry in the access ledger.
// @Description Footage access request state
type AccessRequestResponse struct {
	ID           uuid.UUID `json:"id"`
	CameraID     uuid.UUID `json:"camera_id"`
	CreatedAt    time.Time `json:"created_at"`
	IncidentTime string    `json:"incident_time"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	VideoRef     string    `json:"video_ref,omitempty"`
}

// RequestStatsResponse aggregates ledger counters.
// @Description Access ledger counters
type RequestStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// AnalyzeRequest asks the configured backend a question about approved footage.
// @Description Footage analysis question
type AnalyzeRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=2000"`
}

// AnalyzeResponse is the backend answer. Failures are part of the text.
// @Description Footage analysis answer
type AnalyzeResponse struct {
	Answer string `json:"answer"`
}

// DetectionDTO is one raw detector box in intrinsic pixel space.
// @Description Raw detection box
type DetectionDTO struct {
	Class      string  `json:"class" validate:"required"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// OverlayMapRequest translates detections into display-space drawing
// instructions for a given viewport geometry.
// @Description Overlay coordinate mapping request
type OverlayMapRequest struct {
	Detections      []DetectionDTO `json:"detections" validate:"required,dive"`
	IntrinsicWidth  float64        `json:"intrinsic_width"`
	IntrinsicHeight float64        `json:"intrinsic_height"`
	ContentX        float64        `json:"content_x"`
	ContentY        float64        `json:"content_y"`
	ContentWidth    float64        `json:"content_width" validate:"required,gt=0"`
	ContentHeight   float64        `json:"content_height" validate:"required,gt=0"`
}

// InstructionDTO is one display-space drawing instruction.
// @Description Display-space drawing instruction
type InstructionDTO struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	LabelX     float64 `json:"label_x"`
	LabelY     float64 `json:"label_y"`
	LabelBelow bool    `json:"label_below"`
}

// CreateIncidentRequest creates an incident zone.
// @Description Incident zone creation request
type CreateIncidentRequest struct {
	Type         string  `json:"type" validate:"required,min=2,max=255"`
	Description  string  `json:"description,omitempty"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int     `json:"radius_meters" validate:"required,gt=0"`
}

// UpdateIncidentRequest updates an incident zone.
// @Description Incident zone update request
type UpdateIncidentRequest struct {
	Type         string  `json:"type" validate:"required,min=2,max=255"`
	Description  string  `json:"description,omitempty"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int     `json:"radius_meters" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"required,oneof=active inactive"`
}

// IncidentResponse describes an incident zone.
// @Description Incident zone state
type IncidentResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LocationCheckRequest checks a coordinate against active incident zones.
// @Description Coordinate safety check request
type LocationCheckRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// StatsResponse reports distinct users that checked a location recently.
// @Description Location check statistics
type StatsResponse struct {
	UserCount int `json:"user_count"`
}

// CreateAlertRequest publishes a community advisory.
// @Description Community alert creation request
type CreateAlertRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=255"`
	Message  string `json:"message" validate:"required,min=2,max=2000"`
	Severity string `json:"severity" validate:"required,oneof=high medium low"`
}

// AlertResponse describes one community advisory.
// @Description Community alert state
type AlertResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}
