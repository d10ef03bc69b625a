// Package validate holds the pure input predicates used at the engine
// boundary. Every function is side-effect free and never panics; callers turn
// a false result into a domain error.
package validate

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	monthTokenRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	objectIDRe   = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// MonthToken reports whether s is a well-formed "YYYY-MM" token with a month
// in 01-12.
func MonthToken(s string) bool {
	return monthTokenRe.MatchString(s)
}

// ObjectIDShape reports whether s looks like a 24-character hex document id.
// It checks shape only, not existence.
func ObjectIDShape(s string) bool {
	return objectIDRe.MatchString(s)
}

// DateString reports whether s is a parseable "YYYY-MM-DD" date or a full
// RFC3339 instant.
func DateString(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Amount reports whether v is a finite monetary amount of at least one cent.
func Amount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0.01
}

// OptionalAmount reports whether a present-but-optional amount is finite and
// strictly positive. A nil pointer is valid.
func OptionalAmount(v *float64) bool {
	if v == nil {
		return true
	}
	return !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v > 0
}

// ItemName reports whether name, after trimming, is 3-100 characters long.
func ItemName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= 3 && n <= 100
}
