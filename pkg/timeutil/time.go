package timeutil

import "time"

const day = 24 * time.Hour

// Now returns the current time in UTC
// Always use this instead of time.Now() to ensure timezone consistency
func Now() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a date string and returns a UTC time
func ParseDate(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// StartOfDay returns the start of the day (midnight) in UTC
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToUTC converts a time.Time to UTC if it isn't already
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// WholeDaysCeil returns the duration between from and to in whole days,
// rounding any partial day up. The result is negative when to precedes
// from and zero when the instants coincide.
func WholeDaysCeil(from, to time.Time) int {
	d := to.Sub(from)
	days := int(d / day)
	if d%day > 0 {
		days++
	}
	return days
}
