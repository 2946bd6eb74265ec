package ledger

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() *Ledger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return New(logger)
}

func TestSubmit_RequiresReasonAndTimeWindow(t *testing.T) {
	l := newTestLedger()
	cameraID := uuid.New()

	_, err := l.Submit(cameraID, "", "yesterday 22:00-23:00")
	assert.Error(t, err)

	_, err = l.Submit(cameraID, "vehicle break-in", "")
	assert.Error(t, err)

	id, err := l.Submit(cameraID, "vehicle break-in", "yesterday 22:00-23:00")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestApprove_SetsReferenceAndBlobTogether(t *testing.T) {
	l := newTestLedger()
	cameraID := uuid.New()
	id, err := l.Submit(cameraID, "theft report", "today 10:00-11:00")
	require.NoError(t, err)

	blobID := uuid.New()
	err = l.Approve(id, "/api/v1/videos/"+blobID.String(), blobID)
	require.NoError(t, err)

	req, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, req.Status)
	assert.Equal(t, blobID, req.BlobID)
	assert.Equal(t, "/api/v1/videos/"+blobID.String(), req.VideoRef)
}

func TestApprove_UnknownRequest(t *testing.T) {
	l := newTestLedger()

	err := l.Approve(uuid.New(), "ref", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminalStates_RejectFurtherTransitions(t *testing.T) {
	l := newTestLedger()
	cameraID := uuid.New()

	approvedID, err := l.Submit(cameraID, "reason", "window")
	require.NoError(t, err)
	rejectedID, err := l.Submit(cameraID, "reason", "window")
	require.NoError(t, err)

	blobID := uuid.New()
	require.NoError(t, l.Approve(approvedID, "ref", blobID))
	require.NoError(t, l.Reject(rejectedID))

	// Every transition out of a terminal state must fail loudly.
	assert.ErrorIs(t, l.Approve(approvedID, "other", uuid.New()), ErrInvalidTransition)
	assert.ErrorIs(t, l.Reject(approvedID), ErrInvalidTransition)
	assert.ErrorIs(t, l.Approve(rejectedID, "other", uuid.New()), ErrInvalidTransition)
	assert.ErrorIs(t, l.Reject(rejectedID), ErrInvalidTransition)

	// And the entities must be left unchanged.
	approved, _ := l.Get(approvedID)
	assert.Equal(t, models.StatusApproved, approved.Status)
	assert.Equal(t, blobID, approved.BlobID)
	assert.Equal(t, "ref", approved.VideoRef)

	rejected, _ := l.Get(rejectedID)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Empty(t, rejected.VideoRef)
}

func TestListByCamera_PreservesSubmissionOrder(t *testing.T) {
	l := newTestLedger()
	cameraID := uuid.New()
	otherCamera := uuid.New()

	first, _ := l.Submit(cameraID, "first", "w1")
	_, _ = l.Submit(otherCamera, "noise", "w")
	second, _ := l.Submit(cameraID, "second", "w2")
	third, _ := l.Submit(cameraID, "third", "w3")

	// Terminal transitions must not disturb ordering.
	require.NoError(t, l.Approve(second, "ref", uuid.New()))
	require.NoError(t, l.Reject(first))

	list := l.ListByCamera(cameraID)
	require.Len(t, list, 3)
	assert.Equal(t, first, list[0].ID)
	assert.Equal(t, second, list[1].ID)
	assert.Equal(t, third, list[2].ID)
}

func TestCountByStatus(t *testing.T) {
	l := newTestLedger()
	cameraID := uuid.New()

	a, _ := l.Submit(cameraID, "r", "w")
	b, _ := l.Submit(cameraID, "r", "w")
	_, _ = l.Submit(cameraID, "r", "w")

	require.NoError(t, l.Approve(a, "ref", uuid.New()))
	require.NoError(t, l.Reject(b))

	assert.Equal(t, 1, l.CountByStatus(models.StatusPending))
	assert.Equal(t, 1, l.CountByStatus(models.StatusApproved))
	assert.Equal(t, 1, l.CountByStatus(models.StatusRejected))
}

func TestConcurrentApprove_ExactlyOneWinner(t *testing.T) {
	l := newTestLedger()
	id, err := l.Submit(uuid.New(), "r", "w")
	require.NoError(t, err)

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				errs[n] = l.Approve(id, "ref", uuid.New())
			} else {
				errs[n] = l.Reject(id)
			}
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, winners)

	req, ok := l.Get(id)
	require.True(t, ok)
	assert.True(t, req.Status.IsTerminal())
}

func TestGet_ReturnsCopy(t *testing.T) {
	l := newTestLedger()
	id, _ := l.Submit(uuid.New(), "r", "w")

	req, ok := l.Get(id)
	require.True(t, ok)
	req.Status = models.StatusRejected // mutating the copy must not leak back

	fresh, _ := l.Get(id)
	assert.Equal(t, models.StatusPending, fresh.Status)
}
