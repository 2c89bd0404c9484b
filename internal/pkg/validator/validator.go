package validator

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	clockRegex    = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsValidEmail checks if the email format is valid.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidUsername checks if the username format is valid.
func IsValidUsername(username string) bool {
	if strings.TrimSpace(username) == "" {
		return false
	}
	return usernameRegex.MatchString(username)
}

// IsValidClock checks if the string is a 24-hour HH:MM clock time.
func IsValidClock(clock string) bool {
	return clockRegex.MatchString(clock)
}

// ParseDate parses a calendar date from YYYY-MM-DD or RFC3339 input and
// normalizes it to UTC midnight so equal calendar dates compare equal.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, false
		}
	}

	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// IsFiniteNonNegative reports whether n is a usable per-unit nutrition
// value: a real number that is zero or greater.
func IsFiniteNonNegative(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n >= 0
}

// IsFinitePositive reports whether n is a usable entry amount: a real
// number strictly greater than zero.
func IsFinitePositive(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0
}
