package overlay

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	loadErr   error
	loadDelay time.Duration
	detectErr error
	dets      []Detection
	calls     atomic.Int32
}

func (f *fakeDetector) Load(ctx context.Context) error {
	if f.loadDelay > 0 {
		select {
		case <-time.After(f.loadDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.loadErr
}

func (f *fakeDetector) Detect(ctx context.Context) ([]Detection, error) {
	f.calls.Add(1)
	return f.dets, f.detectErr
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func readyGeometry() (Size, Rect, error) {
	return Size{Width: 640, Height: 480}, Rect{Width: 640, Height: 480}, nil
}

func TestSession_DeliversInstructionsWhenReady(t *testing.T) {
	det := &fakeDetector{dets: []Detection{
		{Class: "person", Score: 0.9, Box: Rect{X: 10, Y: 100, Width: 20, Height: 20}},
	}}

	var mu sync.Mutex
	var frames [][]Instruction
	sink := func(in []Instruction) {
		mu.Lock()
		frames = append(frames, in)
		mu.Unlock()
	}

	s := NewSession(det, NewMapper(nil), readyGeometry, sink, time.Millisecond, quietLogger())
	s.Start(context.Background())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(frames) >= 3
	}, time.Second, time.Millisecond)

	s.Stop()
	assert.Equal(t, StateReady, s.State())

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, frames[0])
	assert.Equal(t, "person", frames[0][0].Class)
}

func TestSession_LoadFailureEntersFailedState(t *testing.T) {
	det := &fakeDetector{loadErr: errors.New("weights missing")}

	s := NewSession(det, NewMapper(nil), readyGeometry, func([]Instruction) {
		t.Error("sink must not be called when the model failed to load")
	}, time.Millisecond, quietLogger())
	s.Start(context.Background())

	require.Eventually(t, func() bool { return s.State() == StateFailed }, time.Second, time.Millisecond)
	s.Stop()
	assert.Zero(t, det.calls.Load())
}

func TestSession_SkipsFramesUntilGeometryReady(t *testing.T) {
	det := &fakeDetector{dets: []Detection{{Class: "person", Score: 1, Box: Rect{Width: 1, Height: 1}}}}

	var ready atomic.Bool
	geometry := func() (Size, Rect, error) {
		if !ready.Load() {
			return Size{}, Rect{}, ErrNotReady
		}
		return readyGeometry()
	}

	var delivered atomic.Int32
	s := NewSession(det, NewMapper(nil), geometry, func([]Instruction) { delivered.Add(1) }, time.Millisecond, quietLogger())
	s.Start(context.Background())

	require.Eventually(t, func() bool { return s.State() == StateReady }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, delivered.Load(), "frames before geometry readiness must be skipped")

	ready.Store(true)
	require.Eventually(t, func() bool { return delivered.Load() > 0 }, time.Second, time.Millisecond)
	s.Stop()
}

func TestSession_StopHaltsRescheduling(t *testing.T) {
	det := &fakeDetector{}

	s := NewSession(det, NewMapper(nil), readyGeometry, func([]Instruction) {}, time.Millisecond, quietLogger())
	s.Start(context.Background())

	require.Eventually(t, func() bool { return det.calls.Load() > 2 }, time.Second, time.Millisecond)
	s.Stop()

	calls := det.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, det.calls.Load(), "no further frames after Stop")
}

func TestSession_ContextCancelStopsLoop(t *testing.T) {
	det := &fakeDetector{}
	ctx, cancel := context.WithCancel(context.Background())

	s := NewSession(det, NewMapper(nil), readyGeometry, func([]Instruction) {}, time.Millisecond, quietLogger())
	s.Start(ctx)

	require.Eventually(t, func() bool { return det.calls.Load() > 0 }, time.Second, time.Millisecond)
	cancel()

	// The loop goroutine must exit on its own; Stop only joins it.
	s.Stop()
}
