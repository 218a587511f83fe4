package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// RawDateTime is a packed date/time pair with independent sub-parts; either
// may be zero-valued (spec.md section 3.1). It deliberately does not carry
// a timezone: section 6.3 fixes the canonical textual form to a bare
// "YYYY-MM-DD HH:MM:SS" (or date-only) string, and no timezone conversion
// is applied anywhere.
type RawDateTime struct {
	HasDate bool
	Year    int
	Month   int // 1-12
	Day     int // 1-31

	HasTime bool
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
}

// DateTimeLayout is the canonical textual form (spec.md section 6.3).
const DateTimeLayout = "2006-01-02 15:04:05"

// DateOnlyLayout is the accepted date-only cast form (spec.md section 6.3).
const DateOnlyLayout = "2006-01-02"

// ParseRawDateTime accepts the canonical "YYYY-MM-DD HH:MM:SS" form or the
// date-only "YYYY-MM-DD" form. Any other shape is InvalidDateTimeFormat,
// reported by the caller since this package does not depend on sqlerr.
func ParseRawDateTime(s string) (RawDateTime, bool) {
	s = strings.TrimSpace(s)
	if dt, ok := parseDateTimeParts(s); ok {
		return dt, true
	}
	return RawDateTime{}, false
}

func parseDateTimeParts(s string) (RawDateTime, bool) {
	datePart, timePart, hasTime := strings.Cut(s, " ")
	year, month, day, ok := parseDatePart(datePart)
	if !ok {
		return RawDateTime{}, false
	}
	dt := RawDateTime{HasDate: true, Year: year, Month: month, Day: day}
	if !hasTime {
		return dt, true
	}
	hour, minute, second, ok := parseTimePart(timePart)
	if !ok {
		return RawDateTime{}, false
	}
	dt.HasTime = true
	dt.Hour, dt.Minute, dt.Second = hour, minute, second
	return dt, true
}

func parseDatePart(s string) (year, month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	y, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	d, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return 0, 0, 0, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, m, d, true
}

func parseTimePart(s string) (hour, minute, second int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	sec, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil {
		return 0, 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, 0, 0, false
	}
	return h, m, sec, true
}

// String renders the canonical textual form: date-only, time-only, or both.
func (d RawDateTime) String() string {
	switch {
	case d.HasDate && d.HasTime:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	case d.HasDate:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case d.HasTime:
		return fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
	default:
		return ""
	}
}

// Compare orders two RawDateTime values by wall-clock value: date first
// (if either carries one), then time (if either carries one).
func (d RawDateTime) Compare(other RawDateTime) int {
	if d.HasDate || other.HasDate {
		if c := compareInts(d.Year, other.Year); c != 0 {
			return c
		}
		if c := compareInts(d.Month, other.Month); c != 0 {
			return c
		}
		if c := compareInts(d.Day, other.Day); c != 0 {
			return c
		}
	}
	if d.HasTime || other.HasTime {
		if c := compareInts(d.Hour, other.Hour); c != 0 {
			return c
		}
		if c := compareInts(d.Minute, other.Minute); c != 0 {
			return c
		}
		if c := compareInts(d.Second, other.Second); c != 0 {
			return c
		}
	}
	return 0
}

func (d RawDateTime) Equal(other RawDateTime) bool {
	return d == other
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
