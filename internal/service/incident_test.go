package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/config"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	notification_mocks "github.com/mvoloshin/camera_coordination_system/internal/notification/mocks"
	"github.com/mvoloshin/camera_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService builds a service instance backed by mocks.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *notification_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	publisherMock := notification_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output clean

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	service := NewIncidentService(repoMock, logger, cfg, publisherMock)
	return service.(*incidentService), repoMock, publisherMock
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:   incidentID,
		Type: "Theft",
	}

	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:   incidentID,
		Type: "Assault",
	}

	// cache miss
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// database hit
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// cache write-back
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	dbError := fmt.Errorf("not found")

	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, dbError).
		Times(1)

	incident, err := service.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, dbError)
}

func TestCreateIncident_SetsActiveStatus(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		Type:         "Theft",
		Latitude:     40.7128,
		Longitude:    -74.0060,
		RadiusMeters: 300,
	}

	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "active", inc.Status)
			return nil
		}).
		Times(1)

	err := service.CreateIncident(ctx, incident)
	require.NoError(t, err)
}

func TestUpdateIncident_InvalidatesCache(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Type: "Theft", Status: "active"}
	update := &models.Incident{ID: incidentID, Type: "Vandalism", Status: "active"}

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "Vandalism", inc.Type)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	err := service.UpdateIncident(ctx, update)
	require.NoError(t, err)
}

func TestCheckLocation_Dangerous_PublishesEvent(t *testing.T) {
	service, repoMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	active := []*models.Incident{{ID: uuid.New(), Type: "Theft", Status: "active"}}

	repoMock.EXPECT().
		FindActiveLocation(ctx, 40.7128, -74.0060).
		Return(active, nil).
		Times(1)

	repoMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, check *models.LocationCheck) error {
			assert.True(t, check.IsDangerous)
			assert.Equal(t, "user-1", check.UserID)
			return nil
		}).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	incidents, err := service.CheckLocation(ctx, "user-1", 40.7128, -74.0060)

	require.NoError(t, err)
	assert.Len(t, incidents, 1)
}

func TestCheckLocation_Safe_NoEvent(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		FindActiveLocation(ctx, 10.0, 20.0).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	incidents, err := service.CheckLocation(ctx, "user-2", 10.0, 20.0)

	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestGetStats_UsesConfiguredWindow(t *testing.T) {
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetLocationCheckStats(ctx, 60).
		Return(42, nil).
		Times(1)

	count, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 42, count)
}
