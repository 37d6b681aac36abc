package report

import (
	"fmt"
	"strings"
)

// Entry is one qualifying user's rendered summary within a report. Entries
// are created fresh on every Render call and never retained by the pipeline.
type Entry struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Active     bool     `json:"active"`
	Role       Role     `json:"role"`
	Address    string   `json:"address"`
	Activities []string `json:"activities"`
}

// Render produces one Entry per qualifying user, in input order. A user
// qualifies when age >= opts.MinAge and (opts.IncludeInactive || active).
// Each entry's activity lines are the user's activities accepted by
// opts.ActivityFilter, formatted with opts.DateFormat, in input order.
// An empty qualifying set yields an empty report, not an error.
func Render(users []User, opts Options) ([]Entry, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	pattern := opts.dateFormat()

	qualifying := SelectUsers(users, opts.MinAge, opts.IncludeInactive)
	entries := make([]Entry, 0, len(qualifying))
	for _, u := range qualifying {
		kept := SelectActivities(u.Activities, opts.ActivityFilter)
		lines := make([]string, 0, len(kept))
		for _, a := range kept {
			line, err := FormatActivity(a, pattern)
			if err != nil {
				return nil, fmt.Errorf("rendering entry for %q: %w", u.Name, err)
			}
			lines = append(lines, line)
		}
		entries = append(entries, Entry{
			Name:       u.Name,
			Age:        u.Age,
			Active:     u.Active,
			Role:       u.Role,
			Address:    u.Address.String(),
			Activities: lines,
		})
	}
	return entries, nil
}

// FormatEntry renders a single entry as a text block:
//
//	Name: Alice
//	Age: 25
//	Status: Active
//	Role: Admin
//	Address: 123 Main St, Metropolis, USA
//	Activities:
//	 - Alice performed login on 2023-01-01
func FormatEntry(e Entry) string {
	status := "Inactive"
	if e.Active {
		status = "Active"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", e.Name)
	fmt.Fprintf(&sb, "Age: %d\n", e.Age)
	fmt.Fprintf(&sb, "Status: %s\n", status)
	fmt.Fprintf(&sb, "Role: %s\n", e.Role)
	fmt.Fprintf(&sb, "Address: %s\n", e.Address)
	sb.WriteString("Activities:\n")
	for _, line := range e.Activities {
		fmt.Fprintf(&sb, " - %s\n", line)
	}
	return sb.String()
}

// RenderText is the text-report form of Render: one formatted block per
// qualifying user. It is a pure rendering over Render's output and shares
// all of its filtering semantics.
func RenderText(users []User, opts Options) ([]string, error) {
	entries, err := Render(users, opts)
	if err != nil {
		return nil, err
	}
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, FormatEntry(e))
	}
	return blocks, nil
}
