package domain

import "time"

// SameLocalDay returns true if a and b fall on the same calendar day in loc.
// The comparison is by numeric year/month/day in the given zone, never by the
// caller's ambient locale or by UTC calendar dates.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's calendar day in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
