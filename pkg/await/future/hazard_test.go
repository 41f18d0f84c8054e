package future

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func captureReports(t *testing.T) *[]error {
	t.Helper()
	var reported []error
	SetUnobservedHandler(func(id uuid.UUID, err error) {
		reported = append(reported, err)
	})
	t.Cleanup(func() { SetUnobservedHandler(nil) })
	return &reported
}

func TestUnobservedRejectionIsReported(t *testing.T) {
	reported := captureReports(t)

	f := Rejected[int](errors.New("dropped"))
	f.reportIfUnobserved()

	assert.Len(t, *reported, 1)
	assert.EqualError(t, (*reported)[0], "dropped")
}

func TestObservedRejectionIsNotReported(t *testing.T) {
	reported := captureReports(t)

	f := Rejected[int](errors.New("seen")).Catch(func(error) {})
	f.reportIfUnobserved()

	assert.Empty(t, *reported)
}

func TestSuccessIsNeverReported(t *testing.T) {
	reported := captureReports(t)

	f := Resolved(1)
	f.reportIfUnobserved()

	assert.Empty(t, *reported)
}

func TestUnsettledFutureIsNotReported(t *testing.T) {
	reported := captureReports(t)

	f := Deferred[int]()
	f.reportIfUnobserved()

	assert.Empty(t, *reported)
	f.Resolve(0)
}

func TestDiscardRoutesFailureDeliberately(t *testing.T) {
	reported := captureReports(t)

	f := Deferred[int]()
	f.Discard()
	f.Reject(errors.New("discarded"))

	assert.Len(t, *reported, 1)

	// but after Discard, collection-time check stays quiet
	f.reportIfUnobserved()
	assert.Len(t, *reported, 1)
}

func TestDiscardOnSuccessIsSilent(t *testing.T) {
	reported := captureReports(t)

	f := Deferred[int]()
	f.Discard()
	f.Resolve(1)

	assert.Empty(t, *reported)
}
