package domain

import "time"

// Clock supplies the current time for every system-assigned timestamp
// (createdAt, updatedAt, startedAt, completedAt, lastReviewed). Tests
// substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by the wall clock in UTC.
func SystemClock() Clock { return systemClock{} }
