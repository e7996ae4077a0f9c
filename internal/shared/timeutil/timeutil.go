// Package timeutil holds the clock-of-day arithmetic the attendance
// calculator is built on: locale digit normalization, H:M parsing and
// overnight-aware interval math on a single calendar day.
package timeutil

import (
	"strconv"
	"strings"
)

// MinutesPerDay is the wraparound unit for overnight intervals.
const MinutesPerDay = 24 * 60

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the offset from midnight in minutes.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	var b strings.Builder
	if c.Hour < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(c.Hour))
	b.WriteByte(':')
	if c.Minute < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(c.Minute))
	return b.String()
}

// NormalizeDigits maps Persian (U+06F0..U+06F9) and Arabic-Indic
// (U+0660..U+0669) digits to their ASCII equivalents. Other runes pass
// through untouched.
func NormalizeDigits(s string) string {
	if s == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		default:
			return r
		}
	}, s)
}

// ParseClock parses an H:M value after digit normalization. Extra
// whitespace is tolerated. Values that do not parse, or fall outside
// hour [0,23] / minute [0,59], report ok=false; callers treat those as
// an absent punch rather than an error.
func ParseClock(v string) (Clock, bool) {
	v = strings.TrimSpace(NormalizeDigits(v))
	if v == "" {
		return Clock{}, false
	}

	parts := strings.Split(v, ":")
	if len(parts) < 2 {
		return Clock{}, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Clock{}, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Clock{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// Span returns the minutes between start and end. An end at or before
// the start is read as belonging to the next day.
func Span(start, end Clock) int {
	s, e := start.Minutes(), end.Minutes()
	if e <= s {
		e += MinutesPerDay
	}
	return e - s
}

// EndMinutes returns end's minute offset relative to start's day,
// pushed past midnight when the interval wraps.
func EndMinutes(start, end Clock) int {
	e := end.Minutes()
	if e <= start.Minutes() {
		e += MinutesPerDay
	}
	return e
}

// Overlap returns the length of the intersection between two minute
// intervals, zero when they are disjoint.
func Overlap(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}
