package registry

import "time"

// Interval is a calendar validity span. A nil End means open-ended (+inf).
// Both bounds are inclusive: a record is applicable on its effective date and,
// when bounded, on its expiration date.
type Interval struct {
	Start time.Time
	End   *time.Time
}

// Contains reports whether d falls inside the interval.
func (iv Interval) Contains(d time.Time) bool {
	if dateBefore(d, iv.Start) {
		return false
	}
	if iv.End != nil && dateBefore(*iv.End, d) {
		return false
	}
	return true
}

// Overlaps reports whether two intervals share at least one date.
// [a1,a2?] and [b1,b2?] overlap iff a1 <= (b2 or +inf) and b1 <= (a2 or +inf).
func (iv Interval) Overlaps(other Interval) bool {
	if other.End != nil && dateBefore(*other.End, iv.Start) {
		return false
	}
	if iv.End != nil && dateBefore(*iv.End, other.Start) {
		return false
	}
	return true
}

// dateBefore compares at day granularity, so times-of-day carried by parsed
// values never influence interval math.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
