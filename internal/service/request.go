package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/analysis"
	"github.com/mvoloshin/camera_coordination_system/internal/blob"
	"github.com/mvoloshin/camera_coordination_system/internal/ledger"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/mvoloshin/camera_coordination_system/internal/notification"
	"github.com/sirupsen/logrus"
)

// ErrNotApproved is returned when footage analysis is requested for a
// request that has not been granted.
var ErrNotApproved = errors.New("service: request is not approved")

// ErrNoFootage is returned when an approved request carries no stored video.
var ErrNoFootage = errors.New("service: request has no footage attached")

// RequestStats is an aggregate snapshot of the access ledger.
type RequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// RequestService coordinates the footage access lifecycle: submission,
// owner decision, stored video handling and hosted analysis.
type RequestService interface {
	Submit(ctx context.Context, cameraID uuid.UUID, reason, incidentTime string) (*models.AccessRequest, error)
	Approve(ctx context.Context, requestID uuid.UUID, videoName, videoMIME string, videoData []byte) (*models.AccessRequest, error)
	Reject(ctx context.Context, requestID uuid.UUID) (*models.AccessRequest, error)
	Get(requestID uuid.UUID) (*models.AccessRequest, error)
	ListByCamera(cameraID uuid.UUID) []*models.AccessRequest
	ListAll() []*models.AccessRequest
	Stats() RequestStats
	Analyze(ctx context.Context, requestID uuid.UUID, prompt string) (string, error)
	OpenVideo(blobID uuid.UUID) (*blob.Resource, error)
	ReleaseVideo(blobID uuid.UUID) error
}

type requestService struct {
	ledger    *ledger.Ledger
	cameras   CameraService
	store     *blob.Store
	analyzer  analysis.Analyzer
	publisher notification.Publisher
	logger    *logrus.Logger
}

func NewRequestService(ldg *ledger.Ledger, cameras CameraService, store *blob.Store, analyzer analysis.Analyzer, publisher notification.Publisher, logger *logrus.Logger) RequestService {
	return &requestService{
		ledger:    ldg,
		cameras:   cameras,
		store:     store,
		analyzer:  analyzer,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit validates the target camera and records a pending request.
func (s *requestService) Submit(ctx context.Context, cameraID uuid.UUID, reason, incidentTime string) (*models.AccessRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "request",
		"method":    "Submit",
		"camera_id": cameraID,
	})

	camera, err := s.cameras.Get(cameraID)
	if err != nil {
		log.Warn("Submission targets an unknown camera")
		return nil, err
	}

	id, err := s.ledger.Submit(cameraID, reason, incidentTime)
	if err != nil {
		return nil, err
	}
	req, _ := s.ledger.Get(id)

	event := notification.Event{
		Type:         notification.EventRequestSubmitted,
		Timestamp:    time.Now().UTC(),
		RequestID:    id.String(),
		CameraID:     cameraID.String(),
		Status:       string(models.StatusPending),
		Reason:       reason,
		IncidentTime: incidentTime,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish submission event")
	}

	log.WithFields(logrus.Fields{
		"request_id": id,
		"owner":      camera.OwnerName,
	}).Info("Access request submitted")
	return req, nil
}

// Approve stores the uploaded footage, then marks the request approved with
// a stable download reference. Storage and the status flip are treated as
// one step: if the ledger refuses the transition the blob is released again.
func (s *requestService) Approve(ctx context.Context, requestID uuid.UUID, videoName, videoMIME string, videoData []byte) (*models.AccessRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "Approve",
		"request_id": requestID,
	})

	blobID := s.store.Put(videoName, videoMIME, videoData)
	videoRef := fmt.Sprintf("/api/v1/videos/%s", blobID)

	if err := s.ledger.Approve(requestID, videoRef, blobID); err != nil {
		if relErr := s.store.Release(blobID); relErr != nil {
			log.WithError(relErr).Error("Failed to release orphaned footage blob")
		}
		return nil, err
	}
	req, _ := s.ledger.Get(requestID)

	event := notification.Event{
		Type:      notification.EventRequestApproved,
		Timestamp: time.Now().UTC(),
		RequestID: requestID.String(),
		CameraID:  req.CameraID.String(),
		Status:    string(models.StatusApproved),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish approval event")
	}

	log.WithField("blob_id", blobID).Info("Access request approved")
	return req, nil
}

// Reject marks the request rejected.
func (s *requestService) Reject(ctx context.Context, requestID uuid.UUID) (*models.AccessRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "Reject",
		"request_id": requestID,
	})

	if err := s.ledger.Reject(requestID); err != nil {
		return nil, err
	}
	req, _ := s.ledger.Get(requestID)

	event := notification.Event{
		Type:      notification.EventRequestRejected,
		Timestamp: time.Now().UTC(),
		RequestID: requestID.String(),
		CameraID:  req.CameraID.String(),
		Status:    string(models.StatusRejected),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish rejection event")
	}

	log.Info("Access request rejected")
	return req, nil
}

func (s *requestService) Get(requestID uuid.UUID) (*models.AccessRequest, error) {
	req, ok := s.ledger.Get(requestID)
	if !ok {
		return nil, fmt.Errorf("service: request %s not found", requestID)
	}
	return req, nil
}

func (s *requestService) ListByCamera(cameraID uuid.UUID) []*models.AccessRequest {
	return s.ledger.ListByCamera(cameraID)
}

func (s *requestService) ListAll() []*models.AccessRequest {
	return s.ledger.ListAll()
}

// Stats returns aggregate counts across the whole ledger.
func (s *requestService) Stats() RequestStats {
	return RequestStats{
		Total:    len(s.ledger.ListAll()),
		Pending:  s.ledger.CountByStatus(models.StatusPending),
		Approved: s.ledger.CountByStatus(models.StatusApproved),
		Rejected: s.ledger.CountByStatus(models.StatusRejected),
	}
}

// Analyze runs the configured hosted backend over the footage of an
// approved request. The backend never fails with an error: every problem
// comes back as the response text.
func (s *requestService) Analyze(ctx context.Context, requestID uuid.UUID, prompt string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "request",
		"method":     "Analyze",
		"request_id": requestID,
	})

	req, ok := s.ledger.Get(requestID)
	if !ok {
		return "", fmt.Errorf("service: request %s not found", requestID)
	}
	if req.Status != models.StatusApproved {
		return "", ErrNotApproved
	}
	if req.BlobID == uuid.Nil {
		return "", ErrNoFootage
	}

	res, err := s.store.Open(req.BlobID)
	if err != nil {
		return "", fmt.Errorf("service: open footage: %w", err)
	}

	answer := s.analyzer.Analyze(ctx, prompt, analysis.File{
		Name: res.Name,
		MIME: res.MIME,
		Data: res.Data,
	})
	log.Info("Footage analysis completed")
	return answer, nil
}

// OpenVideo resolves a stored footage blob for download.
func (s *requestService) OpenVideo(blobID uuid.UUID) (*blob.Resource, error) {
	return s.store.Open(blobID)
}

// ReleaseVideo frees a stored footage blob. Releasing twice is an error.
func (s *requestService) ReleaseVideo(blobID uuid.UUID) error {
	return s.store.Release(blobID)
}
