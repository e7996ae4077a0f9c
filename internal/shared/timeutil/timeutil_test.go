package timeutil_test

import (
	"testing"

	"go-attend/internal/shared/timeutil"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "10:00", timeutil.NormalizeDigits("۱۰:۰۰"))
	assert.Equal(t, "14:35", timeutil.NormalizeDigits("١٤:٣٥"))
	assert.Equal(t, "09:15", timeutil.NormalizeDigits("09:15"))
	assert.Equal(t, "", timeutil.NormalizeDigits(""))
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want timeutil.Clock
		ok   bool
	}{
		{"10:00", timeutil.Clock{Hour: 10}, true},
		{"۱۰:۰۰", timeutil.Clock{Hour: 10}, true},
		{" 7:5 ", timeutil.Clock{Hour: 7, Minute: 5}, true},
		{"23:59", timeutil.Clock{Hour: 23, Minute: 59}, true},
		{"0:0", timeutil.Clock{}, true},
		{"24:00", timeutil.Clock{}, false},
		{"10:60", timeutil.Clock{}, false},
		{"-1:00", timeutil.Clock{}, false},
		{"1000", timeutil.Clock{}, false},
		{"ten:00", timeutil.Clock{}, false},
		{"", timeutil.Clock{}, false},
	}
	for _, tc := range cases {
		got, ok := timeutil.ParseClock(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestSpan(t *testing.T) {
	t.Run("same day", func(t *testing.T) {
		got := timeutil.Span(timeutil.Clock{Hour: 9}, timeutil.Clock{Hour: 17, Minute: 30})
		assert.Equal(t, 510, got)
	})

	t.Run("overnight", func(t *testing.T) {
		got := timeutil.Span(timeutil.Clock{Hour: 22}, timeutil.Clock{Hour: 2})
		assert.Equal(t, 240, got)
	})

	t.Run("equal endpoints wrap a full day", func(t *testing.T) {
		got := timeutil.Span(timeutil.Clock{Hour: 8}, timeutil.Clock{Hour: 8})
		assert.Equal(t, timeutil.MinutesPerDay, got)
	})
}

func TestOverlap(t *testing.T) {
	// work 10:00-20:00 against lunch 14:00-16:30
	assert.Equal(t, 150, timeutil.Overlap(600, 1200, 840, 990))
	// disjoint
	assert.Equal(t, 0, timeutil.Overlap(600, 720, 840, 990))
	// touching edges do not overlap
	assert.Equal(t, 0, timeutil.Overlap(600, 840, 840, 990))
	// containment
	assert.Equal(t, 90, timeutil.Overlap(0, 1440, 840, 930))
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "09:05", timeutil.Clock{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "23:59", timeutil.Clock{Hour: 23, Minute: 59}.String())
}
