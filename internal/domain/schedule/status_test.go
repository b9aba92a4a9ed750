package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))

	assert.NoError(t, CanStart(StatusConfirmed))
	assert.Error(t, CanStart(StatusPending))

	assert.NoError(t, CanComplete(StatusInProgress))
	assert.Error(t, CanComplete(StatusConfirmed))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusInProgress))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCancelled))
}
