package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrInvalidTransition is returned when a terminal transition is attempted
// on a request that does not exist or has already left PENDING. Callers use
// it to detect racing approve/reject actions.
var ErrInvalidTransition = errors.New("ledger: invalid status transition")

// Ledger is the authoritative in-session collection of access requests.
// All mutation goes through Submit/Approve/Reject so the lifecycle
// invariants cannot be bypassed; readers receive copies, never aliases
// into the internal slice.
type Ledger struct {
	mu      sync.Mutex
	entries []*models.AccessRequest
	byID    map[uuid.UUID]*models.AccessRequest
	logger  *logrus.Logger
}

func New(logger *logrus.Logger) *Ledger {
	return &Ledger{
		byID:   make(map[uuid.UUID]*models.AccessRequest),
		logger: logger,
	}
}

// Submit appends a new PENDING request and returns its id. The ledger is
// deliberately registry-agnostic: cameraID is not validated against the
// live node set, callers resolve it before submitting.
func (l *Ledger) Submit(cameraID uuid.UUID, reason, incidentTime string) (uuid.UUID, error) {
	if reason == "" {
		return uuid.Nil, fmt.Errorf("ledger: reason must not be empty")
	}
	if incidentTime == "" {
		return uuid.Nil, fmt.Errorf("ledger: incident time window must not be empty")
	}

	req := &models.AccessRequest{
		ID:           uuid.New(),
		CameraID:     cameraID,
		CreatedAt:    time.Now().UTC(),
		IncidentTime: incidentTime,
		Reason:       reason,
		Status:       models.StatusPending,
	}

	l.mu.Lock()
	l.entries = append(l.entries, req)
	l.byID[req.ID] = req
	l.mu.Unlock()

	l.logger.WithFields(logrus.Fields{
		"component":  "ledger",
		"request_id": req.ID,
		"camera_id":  cameraID,
	}).Info("Access request submitted")
	return req.ID, nil
}

// Approve moves a PENDING request to APPROVED and attaches the playable
// video reference together with the blob handle in the same update.
func (l *Ledger) Approve(requestID uuid.UUID, videoRef string, blobID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.byID[requestID]
	if !ok || req.Status != models.StatusPending {
		return fmt.Errorf("ledger: approve %s: %w", requestID, ErrInvalidTransition)
	}

	req.Status = models.StatusApproved
	req.VideoRef = videoRef
	req.BlobID = blobID

	l.logger.WithFields(logrus.Fields{
		"component":  "ledger",
		"request_id": requestID,
	}).Info("Access request approved")
	return nil
}

// Reject moves a PENDING request to REJECTED. No blob handling.
func (l *Ledger) Reject(requestID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.byID[requestID]
	if !ok || req.Status != models.StatusPending {
		return fmt.Errorf("ledger: reject %s: %w", requestID, ErrInvalidTransition)
	}

	req.Status = models.StatusRejected

	l.logger.WithFields(logrus.Fields{
		"component":  "ledger",
		"request_id": requestID,
	}).Info("Access request rejected")
	return nil
}

// Get returns a copy of one request.
func (l *Ledger) Get(requestID uuid.UUID) (*models.AccessRequest, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.byID[requestID]
	if !ok {
		return nil, false
	}
	cp := *req
	return &cp, true
}

// ListByCamera returns the requests targeting one camera in original
// submission order, regardless of how many have since gone terminal.
func (l *Ledger) ListByCamera(cameraID uuid.UUID) []*models.AccessRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.AccessRequest, 0)
	for _, req := range l.entries {
		if req.CameraID == cameraID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out
}

// ListAll returns every request in submission order.
func (l *Ledger) ListAll() []*models.AccessRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.AccessRequest, 0, len(l.entries))
	for _, req := range l.entries {
		cp := *req
		out = append(out, &cp)
	}
	return out
}

// CountByStatus returns the number of requests currently in the given status.
func (l *Ledger) CountByStatus(status models.RequestStatus) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, req := range l.entries {
		if req.Status == status {
			count++
		}
	}
	return count
}
