package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	week := make(map[time.Weekday]WorkingDay)
	for wd := time.Monday; wd <= time.Saturday; wd++ {
		week[wd] = WorkingDay{
			Weekday:   wd,
			OpenTime:  "08:00",
			CloseTime: "18:00",
			IsOpen:    true,
		}
	}
	week[time.Sunday] = WorkingDay{Weekday: time.Sunday, IsOpen: false}
	return Config{Week: week}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// terça-feira
var baseDate = date(2025, time.March, 11)

// now fixo, anterior a baseDate
var now = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestValidate_OK(t *testing.T) {
	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_PastDate(t *testing.T) {
	cand := Candidate{CustomerID: 1, Date: date(2025, time.March, 7), Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, testConfig(), now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Não é possível agendar para uma data passada.", v[FieldDate])
}

func TestValidate_TodayIsNotPast(t *testing.T) {
	cand := Candidate{CustomerID: 1, Date: date(2025, time.March, 10), Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_ClosedWeekday(t *testing.T) {
	sunday := date(2025, time.March, 16)
	cand := Candidate{CustomerID: 1, Date: sunday, Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, testConfig(), now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Estabelecimento fechado em domingo.", v[FieldDate])
}

func TestValidate_UnconfiguredWeekday(t *testing.T) {
	cfg := testConfig()
	delete(cfg.Week, time.Tuesday)

	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, cfg, now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Horário de funcionamento não configurado para este dia.", v[FieldDate])
}

func TestValidate_OutsideWorkingHours(t *testing.T) {
	for _, hm := range []string{"07:30", "18:00", "19:00"} {
		cand := Candidate{CustomerID: 1, Date: baseDate, Time: hm, DurationMin: 60}

		v := Validate(cand, nil, testConfig(), now)
		require.Contains(t, v, FieldTime, "horário %s", hm)
		assert.Equal(t, "Horário fora do funcionamento (08:00 às 18:00).", v[FieldTime])
	}
}

func TestValidate_OpeningTimeIsValid(t *testing.T) {
	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "08:00", DurationMin: 60}

	v := Validate(cand, nil, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_Holiday(t *testing.T) {
	cfg := testConfig()
	cfg.Holidays = []Holiday{{Date: baseDate, Name: "Aniversário da cidade"}}

	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, cfg, now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Não é possível agendar no feriado: Aniversário da cidade.", v[FieldDate])
}

func TestValidate_RecurringHoliday(t *testing.T) {
	cfg := testConfig()
	cfg.Holidays = []Holiday{{Date: date(2020, time.March, 11), Name: "Feriado fixo", Recurring: true}}

	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "10:00", DurationMin: 60}

	v := Validate(cand, nil, cfg, now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Não é possível agendar no feriado: Feriado fixo.", v[FieldDate])
}

func TestValidate_Overlap(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 2, Date: baseDate, Time: "10:00", Status: StatusConfirmed, DurationMin: 60},
	}

	// janela 09:00-10:30 invade a janela 10:00-11:00
	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "09:00", DurationMin: 90}

	v := Validate(cand, existing, testConfig(), now)
	require.Contains(t, v, FieldTime)
	assert.Equal(t, "Conflito de horário com outro agendamento.", v[FieldTime])
}

func TestValidate_BoundaryTouchDoesNotConflict(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 2, Date: baseDate, Time: "10:00", Status: StatusConfirmed, DurationMin: 60},
	}

	// 11:00 encosta no fim da janela 10:00-11:00
	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "11:00", DurationMin: 60}

	v := Validate(cand, existing, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_CancelledDoesNotConflict(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 2, Date: baseDate, Time: "10:00", Status: StatusCancelled, DurationMin: 60},
		{ID: 11, CustomerID: 2, Date: baseDate, Time: "10:00", Status: StatusCompleted, DurationMin: 60},
	}

	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "10:00", DurationMin: 60}

	v := Validate(cand, existing, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_DailyCapPerCustomer(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 1, Date: baseDate, Time: "08:00", Status: StatusPending, DurationMin: 60},
		{ID: 11, CustomerID: 1, Date: baseDate, Time: "12:00", Status: StatusConfirmed, DurationMin: 60},
	}

	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "15:00", DurationMin: 60}

	v := Validate(cand, existing, testConfig(), now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Cliente já possui agendamentos suficientes para este dia.", v[FieldDate])
}

func TestValidate_DailyCapIgnoresInactive(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 1, Date: baseDate, Time: "08:00", Status: StatusCancelled, DurationMin: 60},
		{ID: 11, CustomerID: 1, Date: baseDate, Time: "12:00", Status: StatusConfirmed, DurationMin: 60},
	}

	cand := Candidate{CustomerID: 1, Date: baseDate, Time: "15:00", DurationMin: 60}

	v := Validate(cand, existing, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_SelfExcludedOnEdit(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 1, Date: baseDate, Time: "10:00", Status: StatusPending, DurationMin: 60},
	}

	// o mesmo registro sendo remarcado para um horário que sobrepõe o
	// antigo não conflita consigo mesmo
	cand := Candidate{ID: 10, CustomerID: 1, Date: baseDate, Time: "10:30", DurationMin: 60}

	v := Validate(cand, existing, testConfig(), now)
	assert.True(t, v.Empty())
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	existing := []Booking{
		{ID: 10, CustomerID: 2, Date: date(2025, time.March, 9), Time: "10:00", Status: StatusConfirmed, DurationMin: 60},
	}

	// domingo passado com conflito de horário: data e hora violadas de uma vez
	cand := Candidate{CustomerID: 1, Date: date(2025, time.March, 9), Time: "10:00", DurationMin: 60}

	v := Validate(cand, existing, testConfig(), now)
	require.Len(t, v, 2)
	assert.Contains(t, v, FieldDate)
	assert.Contains(t, v, FieldTime)
}

func TestValidate_HolidayOverwritesWorkingHoursMessage(t *testing.T) {
	cfg := testConfig()
	sunday := date(2025, time.March, 16)
	cfg.Holidays = []Holiday{{Date: sunday, Name: "Feriado"}}

	cand := Candidate{CustomerID: 1, Date: sunday, Time: "10:00", DurationMin: 60}

	// as duas regras disparam sobre "date"; a mensagem do feriado, avaliada
	// depois, prevalece
	v := Validate(cand, nil, cfg, now)
	require.Contains(t, v, FieldDate)
	assert.Equal(t, "Não é possível agendar no feriado: Feriado.", v[FieldDate])
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, DefaultDurationMin, TotalDuration(nil))
	assert.Equal(t, 90, TotalDuration([]int{30, 60}))
	assert.Equal(t, 30+DefaultDurationMin, TotalDuration([]int{30, 0}))
}

func TestViolationsError(t *testing.T) {
	v := Violations{FieldTime: "b", FieldDate: "a"}
	assert.Equal(t, "date: a; time: b", v.Error())
	assert.False(t, v.Empty())
	assert.True(t, Violations{}.Empty())
}
