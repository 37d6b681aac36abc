// Package roster loads user records from a YAML file into the in-memory
// form the report pipeline consumes.
//
// Roster file format:
//
//	users:
//	  - name: Alice
//	    age: 25
//	    active: true
//	    role: Admin
//	    address:
//	      street: 123 Main St
//	      city: Metropolis
//	      country: USA
//	    activities:
//	      - actor: Alice
//	        verb: login
//	        timestamp: 2023-01-01
//
// Timestamps accept either a plain date (2006-01-02) or RFC3339. Malformed
// records fail the load; nothing is silently coerced.
package roster

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nomis52/goreport/report"
)

// rosterFile mirrors the YAML document layout.
type rosterFile struct {
	Users []userRecord `yaml:"users"`
}

type userRecord struct {
	Name       string           `yaml:"name"`
	Age        int              `yaml:"age"`
	Active     bool             `yaml:"active"`
	Role       string           `yaml:"role"`
	Address    addressRecord    `yaml:"address"`
	Activities []activityRecord `yaml:"activities"`
}

type addressRecord struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

type activityRecord struct {
	Actor     string `yaml:"actor"`
	Verb      string `yaml:"verb"`
	Timestamp string `yaml:"timestamp"`
}

// Load reads and parses the roster file at path.
func Load(path string) ([]report.User, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()
	users, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing roster %q: %w", path, err)
	}
	return users, nil
}

// Parse decodes a roster document from r.
func Parse(r io.Reader) ([]report.User, error) {
	var doc rosterFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	users := make([]report.User, 0, len(doc.Users))
	for i, rec := range doc.Users {
		u, err := rec.toUser()
		if err != nil {
			return nil, fmt.Errorf("user %d (%q): %w", i, rec.Name, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (rec userRecord) toUser() (report.User, error) {
	if rec.Name == "" {
		return report.User{}, fmt.Errorf("name is required")
	}
	if rec.Age < 0 {
		return report.User{}, fmt.Errorf("age %d must not be negative", rec.Age)
	}
	role, err := parseRole(rec.Role)
	if err != nil {
		return report.User{}, err
	}

	activities := make([]report.Activity, 0, len(rec.Activities))
	for i, ar := range rec.Activities {
		a, err := ar.toActivity(rec.Name)
		if err != nil {
			return report.User{}, fmt.Errorf("activity %d: %w", i, err)
		}
		activities = append(activities, a)
	}

	return report.User{
		Name:   rec.Name,
		Age:    rec.Age,
		Active: rec.Active,
		Role:   role,
		Address: report.Address{
			Street:  rec.Address.Street,
			City:    rec.Address.City,
			Country: rec.Address.Country,
		},
		Activities: activities,
	}, nil
}

func (ar activityRecord) toActivity(owner string) (report.Activity, error) {
	verb, err := parseVerb(ar.Verb)
	if err != nil {
		return report.Activity{}, err
	}
	ts, err := parseTimestamp(ar.Timestamp)
	if err != nil {
		return report.Activity{}, err
	}
	actor := ar.Actor
	if actor == "" {
		actor = owner
	}
	return report.Activity{Actor: actor, Verb: verb, Timestamp: ts}, nil
}

func parseRole(s string) (report.Role, error) {
	switch report.Role(s) {
	case report.RoleAdmin, report.RoleUser, report.RoleGuest:
		return report.Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func parseVerb(s string) (report.Verb, error) {
	switch report.Verb(s) {
	case report.VerbLogin, report.VerbLogout, report.VerbPurchase:
		return report.Verb(s), nil
	default:
		return "", fmt.Errorf("unknown verb %q", s)
	}
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q is neither a date nor RFC3339", s)
	}
	return ts, nil
}
