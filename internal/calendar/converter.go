// Package calendar bridges the canonical Gregorian storage dates and
// the Persian calendar used for display and leave accounting.
package calendar

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Converter translates between Gregorian storage dates and the local
// calendar. Month numbering is 1-based on both sides.
type Converter interface {
	ToLocal(t time.Time) (year, month, day int)
	ToGregorian(year, month, day int) time.Time
}

// PersianConverter implements Converter on the Persian (Jalali)
// calendar via go-persian-calendar.
type PersianConverter struct{}

func NewPersianConverter() PersianConverter {
	return PersianConverter{}
}

func (PersianConverter) ToLocal(t time.Time) (int, int, int) {
	y, m, d := t.Date()
	// Anchor to local noon so the UTC/Iran offset never shifts the day.
	pt := ptime.New(time.Date(y, m, d, 12, 0, 0, 0, ptime.Iran()))
	return pt.Year(), int(pt.Month()), pt.Day()
}

func (PersianConverter) ToGregorian(year, month, day int) time.Time {
	g := ptime.Date(year, ptime.Month(month), day, 12, 0, 0, 0, ptime.Iran()).Time()
	gy, gm, gd := g.Date()
	return time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC)
}
