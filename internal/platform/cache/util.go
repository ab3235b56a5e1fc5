package cache

import "time"

// TimeUntilNextMidnightUTC returns the duration until the start of the next
// UTC day. Report caches expire on that boundary, matching the cadence at
// which the upstream system refreshes the report tables.
func TimeUntilNextMidnightUTC() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}
