// Package report generates filtered user activity reports.
//
// The pipeline has three stages: select the users that qualify, select each
// user's qualifying activities, and render the survivors into either
// structured entries or formatted text blocks. All stages are pure functions
// over caller-owned data; nothing here mutates its inputs.
//
// Example usage:
//
//	entries, err := report.Render(users, report.Options{
//		MinAge:          18,
//		IncludeInactive: true,
//		DateFormat:      "YYYY-MM-DD",
//		ActivityFilter:  func(a report.Activity) bool { return a.Verb != report.VerbLogout },
//	})
package report

import (
	"time"
)

// Role classifies a user's position in the system.
type Role string

// Known roles. The string values are the display form used in rendered
// reports.
const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
	RoleGuest Role = "Guest"
)

// Verb identifies the kind of action an activity records.
type Verb string

// Known activity verbs.
const (
	VerbLogin    Verb = "login"
	VerbLogout   Verb = "logout"
	VerbPurchase Verb = "purchase"
)

// Address is a user's postal address.
type Address struct {
	Street  string
	City    string
	Country string
}

// String renders the address as "street, city, country".
func (a Address) String() string {
	return a.Street + ", " + a.City + ", " + a.Country
}

// Activity is a single action taken by a user at a point in time.
// Actor is normally the owning user's name.
type Activity struct {
	Actor     string
	Verb      Verb
	Timestamp time.Time
}

// User is one input record to the report pipeline. Users are owned by the
// caller; the pipeline only reads them.
type User struct {
	Name       string
	Age        int
	Active     bool
	Role       Role
	Address    Address
	Activities []Activity
}
