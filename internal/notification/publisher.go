package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "notification_events"

	EventRequestSubmitted = "request.submitted"
	EventRequestApproved  = "request.approved"
	EventRequestRejected  = "request.rejected"
	EventDangerousZone    = "location.dangerous"
)

// Event is one notification payload pushed to the delivery queue.
// Request lifecycle events carry the request fields; location events
// carry the coordinate and matched incidents.
type Event struct {
	Type         string             `json:"type"`
	Timestamp    time.Time          `json:"timestamp"`
	RequestID    string             `json:"request_id,omitempty"`
	CameraID     string             `json:"camera_id,omitempty"`
	Status       string             `json:"status,omitempty"`
	Reason       string             `json:"reason,omitempty"`
	IncidentTime string             `json:"incident_time,omitempty"`
	UserID       string             `json:"user_id,omitempty"`
	Latitude     float64            `json:"latitude,omitempty"`
	Longitude    float64            `json:"longitude,omitempty"`
	Incidents    []*models.Incident `json:"incidents,omitempty"`
}

// Publisher is the fire-and-forget notification capability.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher queues events on a Redis list for the delivery worker.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes an event onto the queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
