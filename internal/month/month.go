// Package month converts "YYYY-MM" tokens into UTC date ranges and answers
// calendar questions the aggregation engine depends on. All ranges are
// half-open: [first instant of the month, first instant of the next month).
package month

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock supplies the current instant. Business logic never reads the wall
// clock directly so tests can pin "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T. Test helper.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Range is a half-open UTC window covering exactly one calendar month.
// Filters built on it must use Date >= Start && Date < End.
type Range struct {
	Start time.Time
	End   time.Time
}

// Parse converts a "YYYY-MM" token into its UTC range. The token must be
// exactly a 4-digit year, a dash and a zero-padded 2-digit month in 01-12;
// anything else, including months that would silently overflow, is rejected.
func Parse(token string) (Range, error) {
	year, m, err := split(token)
	if err != nil {
		return Range{}, err
	}

	start := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	// Guard against overflow normalization (e.g. a month of 13 becoming
	// January of the following year).
	if start.Year() != year || int(start.Month()) != m {
		return Range{}, fmt.Errorf("invalid month token %q", token)
	}

	return Range{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Next returns the token for the month following the given one.
func Next(token string) (string, error) {
	r, err := Parse(token)
	if err != nil {
		return "", err
	}
	return Format(r.End), nil
}

// Format renders t's year-month as a token, in UTC.
func Format(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// Current is the token for the clock's current UTC month.
func Current(clock Clock) string {
	return Format(clock.Now())
}

// IsCurrent reports whether token names the clock's current UTC month.
func IsCurrent(clock Clock, token string) bool {
	return token == Current(clock)
}

// Days returns the number of calendar days in the token's month.
func Days(token string) (int, error) {
	r, err := Parse(token)
	if err != nil {
		return 0, err
	}
	return int(r.End.Sub(r.Start).Hours() / 24), nil
}

// DaysForAverage returns the divisor for a daily-average figure: the elapsed
// day count (at least 1) when the token is the current month, otherwise the
// full day count of that month. A stats call on the 1st must not divide by
// zero.
func DaysForAverage(clock Clock, token string) (int, error) {
	if IsCurrent(clock, token) {
		day := clock.Now().UTC().Day()
		if day < 1 {
			day = 1
		}
		return day, nil
	}
	return Days(token)
}

func split(token string) (year, m int, err error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid month token %q: want YYYY-MM", token)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month token %q: want YYYY-MM", token)
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month token %q: month out of range", token)
	}
	return year, m, nil
}
