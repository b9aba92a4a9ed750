package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySlots_Grid(t *testing.T) {
	cfg := testConfig()
	cfg.Week[time.Tuesday] = WorkingDay{
		Weekday:   time.Tuesday,
		OpenTime:  "08:00",
		CloseTime: "17:30",
		IsOpen:    true,
	}

	slots, msg := DaySlots(baseDate, cfg, nil)

	require.Empty(t, msg)
	// 08:00 até 17:00 inclusive, de 30 em 30; 17:30 fica de fora
	require.Len(t, slots, 19)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "08:30", slots[1].Time)
	assert.Equal(t, "17:00", slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

func TestDaySlots_OccupiedByExactTime(t *testing.T) {
	occupied := map[string]bool{
		"10:00": true,
		"14:30": true,
	}

	slots, _ := DaySlots(baseDate, testConfig(), occupied)

	bySlot := make(map[string]bool, len(slots))
	for _, s := range slots {
		bySlot[s.Time] = s.Available
	}

	assert.False(t, bySlot["10:00"])
	assert.False(t, bySlot["14:30"])
	assert.True(t, bySlot["10:30"])
}

func TestDaySlots_Sunday(t *testing.T) {
	sunday := date(2025, time.March, 16)

	slots, msg := DaySlots(sunday, testConfig(), nil)

	assert.Empty(t, slots)
	assert.Equal(t, ClosedSundayMessage, msg)
}

func TestDaySlots_ClosedDay(t *testing.T) {
	cfg := testConfig()
	cfg.Week[time.Tuesday] = WorkingDay{Weekday: time.Tuesday, IsOpen: false}

	slots, msg := DaySlots(baseDate, cfg, nil)

	assert.Empty(t, slots)
	assert.Equal(t, "Estabelecimento fechado neste dia", msg)
}

func TestDaySlots_UnconfiguredDay(t *testing.T) {
	cfg := testConfig()
	delete(cfg.Week, time.Tuesday)

	slots, msg := DaySlots(baseDate, cfg, nil)

	assert.Empty(t, slots)
	assert.Equal(t, "Estabelecimento fechado neste dia", msg)
}
