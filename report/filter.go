package report

// SelectUsers returns the users satisfying
// age >= minAge && (includeInactive || active), in input order. The input
// slice is not modified. An empty or nil input yields an empty result.
func SelectUsers(users []User, minAge int, includeInactive bool) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.Age >= minAge && (includeInactive || u.Active) {
			out = append(out, u)
		}
	}
	return out
}

// SelectActivities returns the activities for which keep returns true, in
// input order. A nil keep accepts everything. The input slice is not
// modified.
func SelectActivities(activities []Activity, keep func(Activity) bool) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if keep == nil || keep(a) {
			out = append(out, a)
		}
	}
	return out
}
