// Package dateformat renders timestamps using a small token-substitution
// pattern language.
//
// Recognized tokens:
//
//	YYYY  four-digit year (never padded)
//	MM    month, zero-padded to two digits
//	DD    day of month, zero-padded to two digits
//
// Any other characters in the pattern pass through unchanged. Every
// occurrence of a token is substituted.
//
// Example usage:
//
//	line, err := dateformat.Format(activity.Timestamp, "YYYY-MM-DD")
//	// "2023-02-15"
package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Pattern tokens.
const (
	TokenYear  = "YYYY"
	TokenMonth = "MM"
	TokenDay   = "DD"
)

// DefaultPattern is the pattern used when the caller does not supply one.
const DefaultPattern = "YYYY-MM-DD"

// ErrInvalidInput is returned when the timestamp cannot be rendered.
var ErrInvalidInput = errors.New("invalid timestamp")

// Format renders t according to pattern. Calendar fields are taken from t's
// own location, so the caller decides between UTC and local time by
// constructing t accordingly. A zero timestamp is rejected rather than
// silently rendered as year 1.
func Format(t time.Time, pattern string) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("formatting %q: %w", pattern, ErrInvalidInput)
	}

	year, month, day := t.Date()

	out := pattern
	out = strings.ReplaceAll(out, TokenYear, strconv.Itoa(year))
	out = strings.ReplaceAll(out, TokenMonth, pad2(int(month)))
	out = strings.ReplaceAll(out, TokenDay, pad2(day))
	return out, nil
}

// pad2 zero-pads v to two digits.
func pad2(v int) string {
	return fmt.Sprintf("%02d", v)
}
