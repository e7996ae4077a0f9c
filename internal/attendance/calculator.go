package attendance

import (
	"os"
	"strconv"
	"time"

	"go-attend/internal/shared/timeutil"

	ptime "github.com/yaa110/go-persian-calendar"
	"go.uber.org/zap"
)

// TimePolicy is the site-wide timing configuration. It is passed
// explicitly into every calculation; there is no ambient policy state.
// The clock values are kept as raw strings because they come from the
// same locale-tolerant channel as the punches themselves. Location
// decides which wall clock live punches and "today" are read from,
// so a night-shift clock-in lands on the same calendar day the
// fiscal-month accounting uses.
type TimePolicy struct {
	WorkdayMinutes int
	LunchStart     string
	LunchEnd       string
	LateThreshold  string
	Location       *time.Location
}

func (p TimePolicy) location() *time.Location {
	if p.Location != nil {
		return p.Location
	}
	return time.UTC
}

func DefaultPolicy() TimePolicy {
	return TimePolicy{
		WorkdayMinutes: 480,
		LunchStart:     "14:00",
		LunchEnd:       "15:30",
		LateThreshold:  "10:00",
		Location:       ptime.Iran(),
	}
}

// PolicyFromEnv reads the policy from the environment, falling back to
// the defaults per field.
func PolicyFromEnv() TimePolicy {
	pol := DefaultPolicy()
	if v := os.Getenv("WORKDAY_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pol.WorkdayMinutes = n
		}
	}
	if v := os.Getenv("LUNCH_START"); v != "" {
		pol.LunchStart = v
	}
	if v := os.Getenv("LUNCH_END"); v != "" {
		pol.LunchEnd = v
	}
	if v := os.Getenv("LATE_THRESHOLD"); v != "" {
		pol.LateThreshold = v
	}
	if v := os.Getenv("TIME_LOCATION"); v != "" {
		if loc, err := time.LoadLocation(v); err == nil {
			pol.Location = loc
		}
	}
	return pol
}

// Derived is the full set of computed attendance metrics. All minute
// values are non-negative; Status is a function of the other fields
// and the raw punches, never set by callers.
type Derived struct {
	DurationMinutes       int
	LunchOverlapMinutes   int
	LeaveMinutes          int
	TardinessMinutes      int
	EarlyDepartureMinutes int
	MainWorkMinutes       int
	OvertimeMinutes       int
	Status                string
}

func parseOptional(v *string) (timeutil.Clock, bool) {
	if v == nil {
		return timeutil.Clock{}, false
	}
	return timeutil.ParseClock(*v)
}

// Calculate derives every metric for one record under the given
// policy. It is pure and never fails for malformed punches: an
// unparseable time is an absent punch. A malformed policy fails
// closed, returning an all-zero ABSENT result and logging the reason,
// so the record stays storable.
//
// Intervals are anchored to the record's calendar date; any end at or
// before its start is pushed to the next day (overnight shifts). The
// nominal end of work is anchored at the late threshold plus the
// workday length regardless of the actual clock-in, so overtime and
// early departure always measure deviation from the same fixed
// instant.
func Calculate(rec *Record, pol TimePolicy, logger *zap.Logger) Derived {
	if logger == nil {
		logger = zap.L()
	}
	d := Derived{Status: StatusAbsent}

	lunchStart, okLunchStart := timeutil.ParseClock(pol.LunchStart)
	lunchEnd, okLunchEnd := timeutil.ParseClock(pol.LunchEnd)
	late, okLate := timeutil.ParseClock(pol.LateThreshold)
	if !okLunchStart || !okLunchEnd || !okLate || pol.WorkdayMinutes <= 0 {
		logger.Warn("attendance policy unparseable, zero-filling derived fields",
			zap.String("lunch_start", pol.LunchStart),
			zap.String("lunch_end", pol.LunchEnd),
			zap.String("late_threshold", pol.LateThreshold),
			zap.Int("workday_minutes", pol.WorkdayMinutes),
		)
		return d
	}

	if leaveStart, ok := parseOptional(rec.LeaveStart); ok {
		if leaveEnd, ok := parseOptional(rec.LeaveEnd); ok {
			d.LeaveMinutes = timeutil.Span(leaveStart, leaveEnd)
		}
	}

	timeIn, ok := parseOptional(rec.TimeIn)
	if !ok {
		if d.LeaveMinutes > 0 {
			d.Status = StatusOnLeave
		}
		return d
	}

	if t := timeIn.Minutes() - late.Minutes(); t > 0 {
		d.TardinessMinutes = t
	}

	timeOut, ok := parseOptional(rec.TimeOut)
	if !ok {
		d.Status = StatusPartial
		return d
	}

	inMin := timeIn.Minutes()
	outMin := timeutil.EndMinutes(timeIn, timeOut)
	d.DurationMinutes = outMin - inMin

	d.LunchOverlapMinutes = timeutil.Overlap(
		inMin, outMin,
		lunchStart.Minutes(), timeutil.EndMinutes(lunchStart, lunchEnd),
	)

	net := d.DurationMinutes - d.LunchOverlapMinutes - d.LeaveMinutes
	if net < 0 {
		net = 0
	}

	endOfWork := late.Minutes() + pol.WorkdayMinutes
	switch {
	case outMin > endOfWork:
		d.OvertimeMinutes = outMin - endOfWork
	case outMin < endOfWork:
		d.EarlyDepartureMinutes = endOfWork - outMin
	}

	d.MainWorkMinutes = net
	if d.MainWorkMinutes > pol.WorkdayMinutes {
		d.MainWorkMinutes = pol.WorkdayMinutes
	}

	d.Status = StatusPresent
	return d
}
