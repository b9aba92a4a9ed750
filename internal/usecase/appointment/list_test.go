package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
)

func TestListForUser_StatsAndFilter(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 1, Status: string(schedule.StatusPending)}
	repo.appointments[2] = &models.Appointment{ID: 2, UserID: 1, Status: string(schedule.StatusCompleted)}
	repo.appointments[3] = &models.Appointment{ID: 3, UserID: 1, Status: string(schedule.StatusCompleted)}
	repo.appointments[4] = &models.Appointment{ID: 4, UserID: 2, Status: string(schedule.StatusPending)}

	uc := NewListAppointments(repo, testTZ)

	items, stats, err := uc.ForUser(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(2), stats.Completed)

	items, stats, err = uc.ForUser(context.Background(), 1, string(schedule.StatusCompleted))
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), stats.Total)
}

func TestListForUser_StatusDisplay(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{ID: 1, UserID: 1, Status: string(schedule.StatusInProgress)}

	uc := NewListAppointments(repo, testTZ)

	items, _, err := uc.ForUser(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Em Andamento", items[0].StatusDisplay)
}

func TestListForDate_InvalidDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListAppointments(repo, testTZ)

	_, err := uc.ForDate(context.Background(), "hoje")
	require.Error(t, err)
}
