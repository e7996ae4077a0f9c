package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func strp(s string) *string { return &s }

func policy(workday int, lunchStart, lunchEnd, late string) TimePolicy {
	return TimePolicy{
		WorkdayMinutes: workday,
		LunchStart:     lunchStart,
		LunchEnd:       lunchEnd,
		LateThreshold:  late,
	}
}

func TestCalculate_NoPunches(t *testing.T) {
	rec := &Record{}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusAbsent, d.Status)
	assert.Equal(t, Derived{Status: StatusAbsent}, d)
}

func TestCalculate_LeaveWithoutClockIn(t *testing.T) {
	rec := &Record{
		LeaveStart: strp("09:00"),
		LeaveEnd:   strp("12:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusOnLeave, d.Status)
	assert.Equal(t, 180, d.LeaveMinutes)
	assert.Zero(t, d.DurationMinutes)
	assert.Zero(t, d.TardinessMinutes)
	assert.Zero(t, d.MainWorkMinutes)
	assert.Zero(t, d.OvertimeMinutes)
}

func TestCalculate_HalfLeavePairMeansNoLeave(t *testing.T) {
	rec := &Record{LeaveStart: strp("09:00")}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusAbsent, d.Status)
	assert.Zero(t, d.LeaveMinutes)
}

func TestCalculate_ClockInOnly(t *testing.T) {
	rec := &Record{TimeIn: strp("10:45")}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusPartial, d.Status)
	assert.Equal(t, 45, d.TardinessMinutes)
	assert.Zero(t, d.DurationMinutes)
	assert.Zero(t, d.OvertimeMinutes)
	assert.Zero(t, d.EarlyDepartureMinutes)
}

func TestCalculate_EarlyArrivalHasNoTardiness(t *testing.T) {
	rec := &Record{TimeIn: strp("08:00")}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusPartial, d.Status)
	assert.Zero(t, d.TardinessMinutes)
}

func TestCalculate_OvernightShift(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("22:00"),
		TimeOut: strp("02:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusPresent, d.Status)
	assert.Equal(t, 240, d.DurationMinutes)
	assert.Zero(t, d.LunchOverlapMinutes)
}

func TestCalculate_SameDayDurationIndependentOfLunchAndLeave(t *testing.T) {
	rec := &Record{
		TimeIn:     strp("09:00"),
		TimeOut:    strp("18:00"),
		LeaveStart: strp("11:00"),
		LeaveEnd:   strp("12:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, 540, d.DurationMinutes)
}

func TestCalculate_CanonicalScenario(t *testing.T) {
	// The binding regression case: in 10:00, out 20:00, lunch
	// 14:00-16:30, leave 16:30-18:30, workday 8h, threshold 10:00.
	rec := &Record{
		TimeIn:     strp("10:00"),
		TimeOut:    strp("20:00"),
		LeaveStart: strp("16:30"),
		LeaveEnd:   strp("18:30"),
	}
	pol := policy(480, "14:00", "16:30", "10:00")

	d := Calculate(rec, pol, zap.NewNop())

	assert.Equal(t, 600, d.DurationMinutes)
	assert.Equal(t, 150, d.LunchOverlapMinutes)
	assert.Equal(t, 120, d.LeaveMinutes)
	assert.Equal(t, 330, d.MainWorkMinutes)
	assert.Equal(t, 120, d.OvertimeMinutes)
	assert.Zero(t, d.EarlyDepartureMinutes)
	assert.Zero(t, d.TardinessMinutes)
	assert.Equal(t, StatusPresent, d.Status)
}

func TestCalculate_EarlyDeparture(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("10:00"),
		TimeOut: strp("17:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	// Nominal end of work is 18:00 regardless of lunch placement.
	assert.Equal(t, 60, d.EarlyDepartureMinutes)
	assert.Zero(t, d.OvertimeMinutes)
	assert.Equal(t, 420, d.DurationMinutes)
	assert.Equal(t, 90, d.LunchOverlapMinutes)
	assert.Equal(t, 330, d.MainWorkMinutes)
}

func TestCalculate_ExactNominalEnd(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("10:00"),
		TimeOut: strp("18:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Zero(t, d.OvertimeMinutes)
	assert.Zero(t, d.EarlyDepartureMinutes)
}

func TestCalculate_MainWorkCappedAtWorkday(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("08:00"),
		TimeOut: strp("22:00"),
	}
	pol := policy(480, "23:00", "23:30", "10:00")

	d := Calculate(rec, pol, zap.NewNop())

	assert.Equal(t, 840, d.DurationMinutes)
	assert.Equal(t, 480, d.MainWorkMinutes)
	assert.Equal(t, 240, d.OvertimeMinutes)
}

func TestCalculate_PersianDigitInput(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("۱۰:۰۰"),
		TimeOut: strp("۱۸:۰۰"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	assert.Equal(t, StatusPresent, d.Status)
	assert.Equal(t, 480, d.DurationMinutes)
}

func TestCalculate_UnparseablePunchIsAbsent(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("25:99"),
		TimeOut: strp("18:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	// The bad clock-in reads as no clock-in at all.
	assert.Equal(t, StatusAbsent, d.Status)
	assert.Zero(t, d.DurationMinutes)
}

func TestCalculate_BadPolicyFailsClosed(t *testing.T) {
	rec := &Record{
		TimeIn:  strp("10:00"),
		TimeOut: strp("18:00"),
	}
	pol := policy(480, "not-a-time", "15:30", "10:00")

	d := Calculate(rec, pol, zap.NewNop())

	assert.Equal(t, Derived{Status: StatusAbsent}, d)
}

func TestCalculate_Idempotent(t *testing.T) {
	rec := &Record{
		TimeIn:     strp("10:00"),
		TimeOut:    strp("20:00"),
		LeaveStart: strp("16:30"),
		LeaveEnd:   strp("18:30"),
	}
	pol := policy(480, "14:00", "16:30", "10:00")

	first := Calculate(rec, pol, zap.NewNop())
	second := Calculate(rec, pol, zap.NewNop())
	assert.Equal(t, first, second)
}

func TestCalculate_NoNegativeFields(t *testing.T) {
	// Leave longer than the worked interval drives net below zero.
	rec := &Record{
		TimeIn:     strp("10:00"),
		TimeOut:    strp("12:00"),
		LeaveStart: strp("10:00"),
		LeaveEnd:   strp("20:00"),
	}
	d := Calculate(rec, DefaultPolicy(), zap.NewNop())

	for _, v := range []int{
		d.DurationMinutes, d.LunchOverlapMinutes, d.LeaveMinutes,
		d.TardinessMinutes, d.EarlyDepartureMinutes,
		d.MainWorkMinutes, d.OvertimeMinutes,
	} {
		assert.GreaterOrEqual(t, v, 0)
	}
	assert.Zero(t, d.MainWorkMinutes)
}
