package kernel

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// BusinessLocation is the fixed UTC+7 zone every date comparison of the engine runs in,
// independent of where the process is deployed.
var BusinessLocation = time.FixedZone("UTC+7", 7*60*60)

// BusinessClock reads time from a clockwork.Clock and projects it into BusinessLocation.
type BusinessClock struct {
	clock clockwork.Clock
}

// NewBusinessClock falls back to the real clock when clock is nil.
func NewBusinessClock(clock clockwork.Clock) BusinessClock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return BusinessClock{clock: clock}
}

// Now returns the current instant in the business timezone.
func (c BusinessClock) Now() time.Time {
	return c.clock.Now().In(BusinessLocation)
}

// Today returns midnight of the current business date.
func (c BusinessClock) Today() time.Time {
	return BusinessDate(c.Now())
}

// BusinessDate truncates t to midnight of its calendar date in the business timezone.
func BusinessDate(t time.Time) time.Time {
	y, m, d := t.In(BusinessLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, BusinessLocation)
}

// SameBusinessDate reports whether a and b fall on the same business calendar date.
func SameBusinessDate(a, b time.Time) bool {
	return BusinessDate(a).Equal(BusinessDate(b))
}
