package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/geolocate"
	"github.com/mvoloshin/camera_coordination_system/internal/geomodel"
	"github.com/mvoloshin/camera_coordination_system/internal/ledger"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCameraService(t *testing.T, geocoderURL string) (CameraService, *ledger.Ledger) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gen := geomodel.New(1)
	locator := geolocate.NewLocator("http://127.0.0.1:0", geolocate.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, time.Second, logger)
	geocoder := geolocate.NewGeocoder(geocoderURL, time.Second, logger)
	ldg := ledger.New(logger)

	return NewCameraService(gen, locator, geocoder, ldg, logger), ldg
}

func TestSeed_WithDeviceHint(t *testing.T) {
	service, _ := newTestCameraService(t, "")
	hint := &geolocate.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	coord, source := service.Seed(context.Background(), hint)

	assert.Equal(t, "device", source)
	assert.Equal(t, 51.5074, coord.Latitude)
	assert.Len(t, service.ListAll(), geomodel.NodeCount)
	assert.NotEmpty(t, service.Incidents())
	assert.NotEmpty(t, service.Alerts())
}

func TestListPublic_ExcludesPrivateNodes(t *testing.T) {
	service, _ := newTestCameraService(t, "")
	service.Seed(context.Background(), &geolocate.Coordinate{Latitude: 1, Longitude: 2})

	target := service.ListAll()[0]
	updated, err := service.TogglePrivacy(target.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPrivate)

	public := service.ListPublic()
	assert.Len(t, public, geomodel.NodeCount-1)
	for _, n := range public {
		assert.NotEqual(t, target.ID, n.ID)
	}
	// all-node view still has everything
	assert.Len(t, service.ListAll(), geomodel.NodeCount)
}

func TestTogglePrivacy_UnknownCamera(t *testing.T) {
	service, _ := newTestCameraService(t, "")
	service.Seed(context.Background(), &geolocate.Coordinate{})

	_, err := service.TogglePrivacy(uuid.New())
	assert.ErrorIs(t, err, ErrCameraNotFound)
}

func TestRelocate_RejectsPendingForVanishedNodes(t *testing.T) {
	service, ldg := newTestCameraService(t, "")
	ctx := context.Background()
	service.Seed(ctx, &geolocate.Coordinate{Latitude: 10, Longitude: 20})

	target := service.ListAll()[0]
	reqID, err := ldg.Submit(target.ID, "package stolen from porch", "2026-08-30T21:00:00Z")
	require.NoError(t, err)

	nodes := service.RelocateByCoordinate(ctx, geolocate.Coordinate{Latitude: 30, Longitude: 40})
	assert.Len(t, nodes, geomodel.NodeCount)

	// the old node is gone, its pending request must not stay open
	_, err = service.Get(target.ID)
	assert.ErrorIs(t, err, ErrCameraNotFound)

	req, ok := ldg.Get(reqID)
	require.True(t, ok)
	assert.Equal(t, models.StatusRejected, req.Status)
}

func TestRelocateByQuery_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Springfield", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"39.7990","lon":"-89.6440","display_name":"Springfield, Illinois, USA"}]`))
	}))
	defer srv.Close()

	service, _ := newTestCameraService(t, srv.URL)
	service.Seed(context.Background(), &geolocate.Coordinate{})

	place, nodes, err := service.RelocateByQuery(context.Background(), "Springfield")

	require.NoError(t, err)
	assert.Equal(t, "Springfield", place.Name)
	assert.InDelta(t, 39.7990, place.Coordinate.Latitude, 1e-6)
	assert.Len(t, nodes, geomodel.NodeCount)
	assert.InDelta(t, 39.7990, service.Center().Latitude, 1e-6)
}

func TestRelocateByQuery_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	service, _ := newTestCameraService(t, srv.URL)
	service.Seed(context.Background(), &geolocate.Coordinate{})

	_, _, err := service.RelocateByQuery(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}
