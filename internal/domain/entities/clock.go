package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// FractionalHours converts the clock time to fractional hours, the comparison
// unit for meal windows (11:30 -> 11.5).
func (c ClockTime) FractionalHours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60
}

// String formats the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClockTime parses an "HH:MM" string. Hours and minutes must be within
// their natural ranges.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// TimeValid reports whether now is on or before the "HH:MM" cutoff on the
// current day. A missing or malformed cutoff is never valid.
func TimeValid(activeUntil string, now time.Time) bool {
	cutoff, err := ParseClockTime(activeUntil)
	if err != nil {
		return false
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), cutoff.Hour, cutoff.Minute, 0, 0, now.Location())
	return !now.After(end)
}

// Contains reports whether now falls inside the meal window, both ends
// inclusive, compared as fractional hours.
func (m Meal) Contains(now time.Time) bool {
	current := float64(now.Hour()) + float64(now.Minute())/60
	return current >= m.StartTime.FractionalHours() && current <= m.EndTime.FractionalHours()
}

// CalendarWeek returns the ISO-8601 week number for t (weeks start Monday,
// week 1 contains the year's first Thursday).
func CalendarWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// DayIndex returns the Monday-based weekday index for t, 0 = Monday through
// 6 = Sunday.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
