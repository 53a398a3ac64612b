package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// ClinicLocation returns the timezone appointment wall-clock times are
// interpreted in, configured via the CLINIC_TIMEZONE IANA name. An unset or
// invalid value falls back to UTC.
func ClinicLocation() *time.Location {
	name := os.Getenv("CLINIC_TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Invalid CLINIC_TIMEZONE %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

// ParseClock parses an "HH:MM" 24-hour wall-clock string.
func ParseClock(clock string) (hour, min int, err error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	min, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", clock)
	}
	return hour, min, nil
}

// FormatClock renders an hour/minute pair as zero-padded "HH:MM".
func FormatClock(hour, min int) string {
	return fmt.Sprintf("%02d:%02d", hour, min)
}

// ParseDate parses a "YYYY-MM-DD" calendar date into a midnight UTC timestamp,
// the canonical form appointment dates are stored in.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return t, nil
}

// NormalizeDate truncates a timestamp to midnight UTC so calendar dates
// compare by equality.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
