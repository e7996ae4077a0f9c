package calendar

import "time"

// MonthPeriod is the fiscal leave-accounting window: the 29th of one
// local month through the 28th of the next, expressed as Gregorian
// range-query bounds. It is derived on demand and never stored.
type MonthPeriod struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period, inclusive.
func (p MonthPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// PeriodFor computes the fiscal month covering date. A local
// day-of-month of 29 or later opens a new period at day 29 of the
// current local month; earlier days still belong to the period opened
// on the 29th of the previous local month. The 29-to-28 convention is
// a fixed business rule, not configurable.
func PeriodFor(conv Converter, date time.Time) MonthPeriod {
	startYear, startMonth, day := conv.ToLocal(date)
	if day < 29 {
		startMonth--
		if startMonth < 1 {
			startMonth = 12
			startYear--
		}
	}

	endYear, endMonth := startYear, startMonth+1
	if endMonth > 12 {
		endMonth = 1
		endYear++
	}

	return MonthPeriod{
		Start: conv.ToGregorian(startYear, startMonth, 29),
		End:   conv.ToGregorian(endYear, endMonth, 28),
	}
}
