package service

import (
	"context"
	"fmt"

	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository defines the storage contract for community alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *models.CommunityAlert) error
	List(ctx context.Context, limit int) ([]*models.CommunityAlert, error)
}

// AlertService manages neighborhood-wide advisories.
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.CommunityAlert) error
	ListAlerts(ctx context.Context, limit int) ([]*models.CommunityAlert, error)
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{repo: repo, logger: logger}
}

func (s *alertService) CreateAlert(ctx context.Context, alert *models.CommunityAlert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CreateAlert",
		"severity": alert.Severity,
	})

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create community alert")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	log.WithField("alert_id", alert.ID).Info("Community alert created")
	return nil
}

func (s *alertService) ListAlerts(ctx context.Context, limit int) ([]*models.CommunityAlert, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	alerts, err := s.repo.List(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list community alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
