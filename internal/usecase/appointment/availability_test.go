package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
	"github.com/gaablh4z/v7-sistema-completo/internal/httperr"
	"github.com/gaablh4z/v7-sistema-completo/internal/timezone"
)

func TestGetCalendar_OK(t *testing.T) {
	repo := newFakeRepo()
	_, _, calendar := testDeps()
	uc := NewGetCalendar(repo, calendar, testTZ)

	now := timezone.NowIn(testTZ)
	days, err := uc.Execute(context.Background(), now.Year(), int(now.Month()))

	require.NoError(t, err)
	require.NotEmpty(t, days)
	// semanas completas, começando na segunda-feira
	assert.Equal(t, 0, len(days)%7)
	assert.Equal(t, int(time.Monday), days[0].Weekday)
}

func TestGetCalendar_InvalidRange(t *testing.T) {
	repo := newFakeRepo()
	_, _, calendar := testDeps()
	uc := NewGetCalendar(repo, calendar, testTZ)

	_, err := uc.Execute(context.Background(), 1999, 5)
	assert.True(t, httperr.IsBusiness(err, "invalid_year"))

	_, err = uc.Execute(context.Background(), 2101, 5)
	assert.True(t, httperr.IsBusiness(err, "invalid_year"))

	_, err = uc.Execute(context.Background(), 2030, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))

	_, err = uc.Execute(context.Background(), 2030, 13)
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
}

func TestGetTimeSlots_OK(t *testing.T) {
	repo := newFakeRepo()
	repo.occupied = map[string]bool{"10:00": true}
	uc := NewGetTimeSlots(repo, testTZ)

	result, err := uc.Execute(context.Background(), futureWorkday().Format(schedule.DateLayout))

	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)
	assert.Empty(t, result.Message)

	bySlot := make(map[string]bool, len(result.Slots))
	for _, s := range result.Slots {
		bySlot[s.Time] = s.Available
	}
	assert.False(t, bySlot["10:00"])
	assert.True(t, bySlot["10:30"])
}

func TestGetTimeSlots_Sunday(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetTimeSlots(repo, testTZ)

	result, err := uc.Execute(context.Background(), futureSunday().Format(schedule.DateLayout))

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Equal(t, schedule.ClosedSundayMessage, result.Message)
}

func TestGetTimeSlots_InvalidDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetTimeSlots(repo, testTZ)

	_, err := uc.Execute(context.Background(), "31-12-2030")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
