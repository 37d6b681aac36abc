package report

import (
	"fmt"

	"github.com/nomis52/goreport/dateformat"
)

// FormatActivity renders one activity as
// "<actor> performed <verb> on <date>", with the date rendered using the
// given dateformat pattern. An empty pattern means dateformat.DefaultPattern.
func FormatActivity(a Activity, pattern string) (string, error) {
	if pattern == "" {
		pattern = dateformat.DefaultPattern
	}
	date, err := dateformat.Format(a.Timestamp, pattern)
	if err != nil {
		return "", fmt.Errorf("formatting activity for %q: %w", a.Actor, err)
	}
	return fmt.Sprintf("%s performed %s on %s", a.Actor, a.Verb, date), nil
}
