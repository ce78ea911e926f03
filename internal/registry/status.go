package registry

import "time"

// Record status values. Status is always derived from the validity interval;
// kinds that persist a status column treat it as a cache refreshed on writes.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// StatusOn derives active/expired for an interval as of a date. The expiration
// day itself still counts as active (inclusive end).
func StatusOn(iv Interval, asOf time.Time) string {
	if iv.End != nil && dateBefore(*iv.End, asOf) {
		return StatusExpired
	}
	return StatusActive
}
