package domain

import (
	"errors"
	"time"
)

const DateKeyLayout = "2006-01-02"

var ErrInvalidDateKey = errors.New("invalid date (must be YYYY-MM-DD)")

// DateKey returns the wall-clock date of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

func ValidateDateKey(key string) error {
	_, err := ParseDateKey(key, time.UTC)
	return err
}

// civilDay numbers calendar days so that differences are immune to DST shifts.
func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func daysBetween(from, to time.Time) int {
	return civilDay(to) - civilDay(from)
}
