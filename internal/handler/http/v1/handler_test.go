package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/blob"
	"github.com/mvoloshin/camera_coordination_system/internal/config"
	"github.com/mvoloshin/camera_coordination_system/internal/handler/http/v1/mocks"
	"github.com/mvoloshin/camera_coordination_system/internal/ledger"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/mvoloshin/camera_coordination_system/internal/overlay"
	"github.com/mvoloshin/camera_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	cameras   *mocks.MockCameraService
	requests  *mocks.MockRequestService
	incidents *mocks.MockIncidentService
	alerts    *mocks.MockAlertService
}

// newTestHandler builds a Handler wired to mocked services.
func newTestHandler(t *testing.T) (*Handler, *testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		cameras:   mocks.NewMockCameraService(ctrl),
		requests:  mocks.NewMockRequestService(ctrl),
		incidents: mocks.NewMockIncidentService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output clean

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
		MaxVideoUploadBytes:    1 << 20,
	}

	handler := NewHandler(m.cameras, m.requests, m.incidents, m.alerts, overlay.NewMapper(nil), logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest performs an HTTP request against the test router.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func apiKey() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestListCameras_ExcludesPrivate(t *testing.T) {
	_, m, router := newTestHandler(t)
	public := []models.CameraNode{
		{ID: uuid.New(), OwnerName: "John Smith", HasFootage: true},
	}

	m.cameras.EXPECT().ListPublic().Return(public).Times(1)

	w := makeRequest(router, "GET", "/api/v1/cameras", nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CameraResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "John Smith", resp[0].OwnerName)
}

func TestGetCamera_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	cameraID := uuid.New()

	m.cameras.EXPECT().Get(cameraID).Return(models.CameraNode{}, service.ErrCameraNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/cameras/%s", cameraID), nil, apiKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "camera not found")
}

func TestTogglePrivacy_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	cameraID := uuid.New()
	updated := models.CameraNode{ID: cameraID, IsPrivate: true}

	m.cameras.EXPECT().TogglePrivacy(cameraID).Return(updated, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/cameras/%s/privacy", cameraID), nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CameraResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPrivate)
}

func TestSubmitRequest_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	cameraID := uuid.New()
	reqBody := CreateAccessRequest{
		CameraID:     cameraID,
		Reason:       "package theft last night",
		IncidentTime: "2026-08-30T21:00:00Z",
	}
	created := &models.AccessRequest{
		ID:           uuid.New(),
		CameraID:     cameraID,
		Reason:       reqBody.Reason,
		IncidentTime: reqBody.IncidentTime,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}

	m.requests.EXPECT().
		Submit(gomock.Any(), cameraID, reqBody.Reason, reqBody.IncidentTime).
		Return(created, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/requests", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AccessRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.StatusPending), resp.Status)
}

func TestSubmitRequest_UnknownCamera(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAccessRequest{
		CameraID:     uuid.New(),
		Reason:       "vandalism",
		IncidentTime: "2026-08-30T21:00:00Z",
	}

	m.requests.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrCameraNotFound).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/requests", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRequest_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateAccessRequest{CameraID: uuid.New()} // reason, incident time missing

	m.requests.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/requests", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Reason' failed on the 'required' tag")
}

func multipartVideo(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestApproveRequest_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	requestID := uuid.New()
	blobID := uuid.New()
	approved := &models.AccessRequest{
		ID:       requestID,
		Status:   models.StatusApproved,
		VideoRef: fmt.Sprintf("/api/v1/videos/%s", blobID),
		BlobID:   blobID,
	}

	m.requests.EXPECT().
		Approve(gomock.Any(), requestID, "clip.mp4", gomock.Any(), []byte("frames")).
		Return(approved, nil).
		Times(1)

	body, contentType := multipartVideo(t, "video", "clip.mp4", []byte("frames"))
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/v1/requests/%s/approve", requestID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AccessRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.StatusApproved), resp.Status)
	assert.Equal(t, approved.VideoRef, resp.VideoRef)
}

func TestApproveRequest_AlreadyDecided(t *testing.T) {
	_, m, router := newTestHandler(t)
	requestID := uuid.New()

	m.requests.EXPECT().
		Approve(gomock.Any(), requestID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, ledger.ErrInvalidTransition).
		Times(1)

	body, contentType := multipartVideo(t, "video", "clip.mp4", []byte("frames"))
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/v1/requests/%s/approve", requestID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "request already decided")
}

func TestApproveRequest_MissingVideo(t *testing.T) {
	_, m, router := newTestHandler(t)
	requestID := uuid.New()

	m.requests.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/requests/%s/approve", requestID), nil, apiKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "video file is required")
}

func TestRejectRequest_Conflict(t *testing.T) {
	_, m, router := newTestHandler(t)
	requestID := uuid.New()

	m.requests.EXPECT().
		Reject(gomock.Any(), requestID).
		Return(nil, ledger.ErrInvalidTransition).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/requests/%s/reject", requestID), nil, apiKey())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAnalyzeRequest_NotApproved(t *testing.T) {
	_, m, router := newTestHandler(t)
	requestID := uuid.New()
	reqBody := AnalyzeRequest{Prompt: "what happened?"}

	m.requests.EXPECT().
		Analyze(gomock.Any(), requestID, "what happened?").
		Return("", service.ErrNotApproved).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/requests/%s/analyze", requestID), bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAnalyzeRequest_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	requestID := uuid.New()
	reqBody := AnalyzeRequest{Prompt: "describe the scene"}

	m.requests.EXPECT().
		Analyze(gomock.Any(), requestID, "describe the scene").
		Return("A person walks past the gate.", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/requests/%s/analyze", requestID), bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A person walks past the gate.", resp.Answer)
}

func TestGetRequestStats(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.requests.EXPECT().
		Stats().
		Return(service.RequestStats{Total: 3, Pending: 1, Approved: 1, Rejected: 1}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/requests/stats", nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RequestStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Pending)
}

func TestGetVideo_Released(t *testing.T) {
	_, m, router := newTestHandler(t)
	blobID := uuid.New()

	m.requests.EXPECT().OpenVideo(blobID).Return(nil, blob.ErrReleased).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/videos/%s", blobID), nil, apiKey())

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestDeleteVideo_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	blobID := uuid.New()

	m.requests.EXPECT().ReleaseVideo(blobID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/videos/%s", blobID), nil, apiKey())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMapOverlay_Success(t *testing.T) {
	_, _, router := newTestHandler(t)
	reqBody := OverlayMapRequest{
		Detections: []DetectionDTO{
			{Class: "person", Confidence: 0.9, X: 100, Y: 100, Width: 50, Height: 50},
		},
		IntrinsicWidth:  640,
		IntrinsicHeight: 480,
		ContentWidth:    320,
		ContentHeight:   240,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/overlay/map", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []InstructionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 50.0, resp[0].X)
	assert.Equal(t, 25.0, resp[0].Width)
}

func TestMapOverlay_GeometryNotReady(t *testing.T) {
	_, _, router := newTestHandler(t)
	reqBody := OverlayMapRequest{
		Detections: []DetectionDTO{
			{Class: "person", Confidence: 0.9, X: 1, Y: 1, Width: 2, Height: 2},
		},
		IntrinsicWidth:  0,
		IntrinsicHeight: 0,
		ContentWidth:    320,
		ContentHeight:   240,
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/overlay/map", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "video geometry not ready")
}

func TestCheckLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LocationCheckRequest{UserID: "user-1", Latitude: 10.0, Longitude: 20.0}
	active := []*models.Incident{{ID: uuid.New(), Type: "Theft", Status: "active"}}

	m.incidents.EXPECT().
		CheckLocation(gomock.Any(), "user-1", 10.0, 20.0).
		Return(active, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/check", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Theft", resp[0].Type)
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Type:         "Theft",
		Latitude:     10.0,
		Longitude:    20.0,
		RadiusMeters: 100,
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Type:         "Theft",
		Description:  "string of break-ins",
		Latitude:     10.0,
		Longitude:    20.0,
		RadiusMeters: 300,
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			inc.Status = "active"
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "Theft", resp.Type)
}

func TestListAlerts_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alerts := []*models.CommunityAlert{
		{ID: uuid.New(), Title: "Suspicious Vehicle", Severity: "medium"},
	}

	m.alerts.EXPECT().ListAlerts(gomock.Any(), 20).Return(alerts, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil, apiKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Suspicious Vehicle", resp[0].Title)
}

func TestCreateAlert_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.AssignableToTypeOf(&models.CommunityAlert{})).
		DoAndReturn(func(_ context.Context, alert *models.CommunityAlert) error {
			assert.Equal(t, "high", alert.Severity)
			return nil
		}).
		Times(1)

	body := `{"title":"Break-in reported","message":"Garage break-in on Elm St overnight","severity":"high"}`
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBufferString(body), apiKey())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "high", resp.Severity)
}

func TestCreateAlert_RejectsUnknownSeverity(t *testing.T) {
	_, _, router := newTestHandler(t)

	for _, severity := range []string{"urgent", "warning", ""} {
		body := fmt.Sprintf(`{"title":"Test","message":"Test message","severity":"%s"}`, severity)
		w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBufferString(body), apiKey())

		assert.Equal(t, http.StatusBadRequest, w.Code, "severity %q should be rejected", severity)
	}
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAPIKeyMiddleware_HealthExempt(t *testing.T) {
	handler, m, _ := newTestHandler(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"test-api-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, APIKeyAuthMiddleware(cfg, logger))

	// health answers without a key
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// everything else requires one
	w = makeRequest(router, "GET", "/api/v1/cameras", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	m.cameras.EXPECT().ListPublic().Return(nil).Times(1)
	w = makeRequest(router, "GET", "/api/v1/cameras", nil, apiKey())
	assert.Equal(t, http.StatusOK, w.Code)
}
