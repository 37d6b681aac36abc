package report

import (
	"errors"
	"fmt"

	"github.com/nomis52/goreport/dateformat"
)

// ErrInvalidInput is returned when report options are malformed, such as a
// negative minimum age.
var ErrInvalidInput = errors.New("invalid input")

// Options controls which users and activities appear in a report and how
// activity timestamps are rendered.
type Options struct {
	// MinAge is the minimum age a user must have to appear in the report.
	// Zero admits all ages; negative values are rejected by Render.
	MinAge int

	// IncludeInactive admits users whose Active flag is false.
	IncludeInactive bool

	// DateFormat is the dateformat pattern applied to activity timestamps.
	// Empty means dateformat.DefaultPattern.
	DateFormat string

	// ActivityFilter decides which of a user's activities appear in their
	// entry. Nil means accept all.
	ActivityFilter func(Activity) bool
}

// DefaultOptions returns the documented defaults: minimum age 18, inactive
// users excluded, "YYYY-MM-DD" dates, all activities accepted.
func DefaultOptions() Options {
	return Options{
		MinAge:     18,
		DateFormat: dateformat.DefaultPattern,
	}
}

// validate rejects option values that cannot be honored.
func (o Options) validate() error {
	if o.MinAge < 0 {
		return fmt.Errorf("min age %d must not be negative: %w", o.MinAge, ErrInvalidInput)
	}
	return nil
}

// dateFormat returns the effective date pattern.
func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return dateformat.DefaultPattern
	}
	return o.DateFormat
}
