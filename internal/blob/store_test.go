package blob

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewStore(logger)
}

func TestPutOpen(t *testing.T) {
	s := newTestStore()

	id := s.Put("clip.mp4", "video/mp4", []byte("payload"))
	res, err := s.Open(id)
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", res.Name)
	assert.Equal(t, "video/mp4", res.MIME)
	assert.Equal(t, []byte("payload"), res.Data)
	assert.Equal(t, 1, s.Live())
}

func TestOpen_UnknownHandle(t *testing.T) {
	s := newTestStore()

	_, err := s.Open(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRelease_ExactlyOnce(t *testing.T) {
	s := newTestStore()
	id := s.Put("clip.mp4", "video/mp4", []byte("payload"))

	require.NoError(t, s.Release(id))
	assert.ErrorIs(t, s.Release(id), ErrReleased)
}

func TestOpen_AfterReleaseFailsLoudly(t *testing.T) {
	s := newTestStore()
	id := s.Put("clip.mp4", "video/mp4", []byte("payload"))
	require.NoError(t, s.Release(id))

	_, err := s.Open(id)
	assert.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, 0, s.Live())
}

func TestReleaseAll(t *testing.T) {
	s := newTestStore()
	a := s.Put("a.mp4", "video/mp4", []byte("a"))
	b := s.Put("b.mp4", "video/mp4", []byte("b"))

	s.ReleaseAll()
	assert.Equal(t, 0, s.Live())

	_, err := s.Open(a)
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, s.Release(b), ErrReleased)
}
