package overlay

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// State is the lifecycle of the detection capability behind a session.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Detector is the inference capability driven by a Session. Load is
// called once before the frame loop starts; Detect runs against the
// current frame of the underlying source.
type Detector interface {
	Load(ctx context.Context) error
	Detect(ctx context.Context) ([]Detection, error)
}

// GeometryFunc reports the current intrinsic size and displayed content
// rectangle of the video being analyzed. It returns ErrNotReady while
// the video metadata has not loaded yet.
type GeometryFunc func() (Size, Rect, error)

// SinkFunc receives the drawing instructions for one frame.
type SinkFunc func([]Instruction)

// Session runs the per-frame detection loop. The loop only runs in the
// Ready state and checks the enabled flag both before each iteration and
// before scheduling the next one, so Stop halts rescheduling within one
// frame. Inference already in flight is allowed to finish; its result is
// simply not drawn when the session was disabled meanwhile.
type Session struct {
	detector Detector
	mapper   *Mapper
	geometry GeometryFunc
	sink     SinkFunc
	interval time.Duration
	logger   *logrus.Logger

	enabled atomic.Bool
	state   atomic.Int32
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSession(detector Detector, mapper *Mapper, geometry GeometryFunc, sink SinkFunc, interval time.Duration, logger *logrus.Logger) *Session {
	return &Session{
		detector: detector,
		mapper:   mapper,
		geometry: geometry,
		sink:     sink,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// State returns the current capability state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Start loads the detector and launches the frame loop in a goroutine.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.enabled.Store(true)
	s.state.Store(int32(StateLoading))

	log := s.logger.WithField("component", "detection_session")
	log.Info("Loading detection model...")

	go func() {
		defer close(s.done)

		if err := s.detector.Load(ctx); err != nil {
			s.state.Store(int32(StateFailed))
			log.WithError(err).Error("Failed to load detection model")
			return
		}
		s.state.Store(int32(StateReady))
		log.Info("Detection model ready")

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.enabled.Load() {
					return
				}
				s.runFrame(ctx, log)
				if !s.enabled.Load() {
					return
				}
			}
		}
	}()
}

func (s *Session) runFrame(ctx context.Context, log *logrus.Entry) {
	intrinsic, content, err := s.geometry()
	if err != nil {
		// Video metadata not loaded yet, skip the frame.
		return
	}

	detections, err := s.detector.Detect(ctx)
	if err != nil {
		log.WithError(err).Warn("Frame inference failed")
		return
	}

	// The inference above may outlive a Stop call; re-check before drawing.
	if !s.enabled.Load() {
		return
	}

	instructions, err := s.mapper.Map(detections, intrinsic, content)
	if err != nil {
		return
	}
	s.sink(instructions)
}

// Stop disables the loop and cancels rescheduling. It blocks until the
// loop goroutine has exited.
func (s *Session) Stop() {
	s.enabled.Store(false)
	if s.cancel != nil {
		s.cancel()
	}
	<-s.done
}
