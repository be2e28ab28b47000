package calendar

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey identifies a calendar day. Month is 1-based (time.January == 1).
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the key of t in t's location.
func KeyOf(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{Year: y, Month: m, Day: d}
}

// Widest accepted year, month and day fields.
var partWidths = [3]int{4, 2, 2}

// ParseDateKey accepts "2026-3-15" and "2026-03-15". Each field is plain
// digits, at most four for the year and two for month and day. The date must
// exist.
func ParseDateKey(s string) (DateKey, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return DateKey{}, fmt.Errorf("date key %q: want year-month-day", s)
	}

	var nums [3]int
	for i, p := range parts {
		if p == "" || len(p) > partWidths[i] || strings.TrimLeft(p, "0123456789") != "" {
			return DateKey{}, fmt.Errorf("date key %q: bad field %q", s, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return DateKey{}, fmt.Errorf("date key %q: %w", s, err)
		}
		nums[i] = n
	}

	k := DateKey{Year: nums[0], Month: time.Month(nums[1]), Day: nums[2]}
	if !k.Valid() {
		return DateKey{}, fmt.Errorf("date key %q: no such day", s)
	}
	return k, nil
}

// Valid reports whether k names a real day in years 1 through 9999, the
// range ParseDateKey can read back from String.
func (k DateKey) Valid() bool {
	if k.Year < 1 || k.Year > 9999 {
		return false
	}
	if k.Month < time.January || k.Month > time.December {
		return false
	}
	return k.Day >= 1 && k.Day <= DaysInMonth(k.Year, k.Month)
}

// String returns the canonical form, e.g. "2026-3-15".
func (k DateKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, int(k.Month), k.Day)
}

// Time returns local midnight of k.
func (k DateKey) Time() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.Local)
}

// Compare returns -1, 0 or +1 ordering by year, month, day.
func (k DateKey) Compare(o DateKey) int {
	switch {
	case k.Year != o.Year:
		return cmp.Compare(k.Year, o.Year)
	case k.Month != o.Month:
		return cmp.Compare(k.Month, o.Month)
	default:
		return cmp.Compare(k.Day, o.Day)
	}
}

// Before reports whether k sorts before o.
func (k DateKey) Before(o DateKey) bool {
	return k.Compare(o) < 0
}

// DaysInMonth returns the number of days in month of year. Day 0 of the
// following month normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 (0 = Sunday).
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday())
}
