package geolocate

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

var sanFrancisco = Coordinate{Latitude: 37.7749, Longitude: -122.4194}

func TestLocate_DeviceHintWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("IP lookup must not run when a device hint is present")
	}))
	defer srv.Close()

	l := NewLocator(srv.URL, sanFrancisco, time.Second, quietLogger())
	hint := &Coordinate{Latitude: 55.75, Longitude: 37.61}

	coord, source := l.Locate(context.Background(), hint)
	assert.Equal(t, *hint, coord)
	assert.Equal(t, "device", source)
}

func TestLocate_IPTier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude": 48.8566, "longitude": 2.3522, "city": "Paris"}`))
	}))
	defer srv.Close()

	l := NewLocator(srv.URL, sanFrancisco, time.Second, quietLogger())
	coord, source := l.Locate(context.Background(), nil)
	assert.Equal(t, Coordinate{Latitude: 48.8566, Longitude: 2.3522}, coord)
	assert.Equal(t, "ip:Paris", source)
}

func TestLocate_FallsThroughToDefault(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"missing coordinates": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"city": "Nowhere"}`))
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			l := NewLocator(srv.URL, sanFrancisco, time.Second, quietLogger())
			coord, source := l.Locate(context.Background(), nil)
			assert.Equal(t, sanFrancisco, coord)
			assert.Equal(t, "default", source)
		})
	}
}

func TestLocate_UnreachableLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	l := NewLocator(srv.URL, sanFrancisco, time.Second, quietLogger())
	coord, source := l.Locate(context.Background(), nil)
	assert.Equal(t, sanFrancisco, coord)
	assert.Equal(t, "default", source)
}

func TestSearch_FirstHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "union square", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[
			{"lat": "37.7880", "lon": "-122.4075", "display_name": "Union Square, San Francisco, California"},
			{"lat": "0", "lon": "0", "display_name": "Somewhere Else"}
		]`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, time.Second, quietLogger())
	place, err := g.Search(context.Background(), "union square")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Union Square", place.Name)
	assert.InDelta(t, 37.7880, place.Coordinate.Latitude, 1e-9)
	assert.InDelta(t, -122.4075, place.Coordinate.Longitude, 1e-9)
}

func TestSearch_EmptyResultIsNotFoundNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, time.Second, quietLogger())
	place, err := g.Search(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestSearch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := NewGeocoder(srv.URL, time.Second, quietLogger())
	_, err := g.Search(context.Background(), "anywhere")
	assert.Error(t, err)
}
