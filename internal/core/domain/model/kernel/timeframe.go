package kernel

import (
	"errors"
	"fmt"
	"time"

	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

const (
	minEncodedTime = 0
	maxEncodedTime = 2359
)

var ErrTimeFrameIsNotConstructed = errors.New("TimeFrame must be created via NewTimeFrame constructor")

// EncodeTime packs an hour and minute into the HHmm integer form (09:30 -> 930).
func EncodeTime(hour, minute int) int {
	return hour*100 + minute
}

// DecodeTime splits an HHmm integer into hour and minute.
func DecodeTime(encoded int) (int, int, error) {
	if err := ValidateEncodedTime("time", encoded); err != nil {
		return 0, 0, err
	}
	return encoded / 100, encoded % 100, nil
}

// EncodeClock encodes the wall-clock part of t, dropping seconds.
func EncodeClock(t time.Time) int {
	return EncodeTime(t.Hour(), t.Minute())
}

// ValidateEncodedTime accepts 0..2359 with a minute part below 60.
func ValidateEncodedTime(paramName string, encoded int) error {
	if encoded < minEncodedTime || encoded > maxEncodedTime {
		return errs.NewValueIsOutOfRangeError(paramName, encoded, minEncodedTime, maxEncodedTime)
	}
	if encoded%100 >= 60 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d has minutes above 59", encoded))
	}
	return nil
}

// StartOfSlot resolves an HHmm value against the calendar date of base, in base's location.
// The encoded value is expected to be valid.
func StartOfSlot(base time.Time, encoded int) time.Time {
	y, m, d := base.Date()
	return time.Date(y, m, d, encoded/100, encoded%100, 0, 0, base.Location())
}

// TimeFrame is a (start, end) pair of HHmm values matching one of a shop's operating slots.
type TimeFrame struct {
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewTimeFrame takes both bounds as HHmm and requires start to be strictly before end.
// Frames never cross midnight.
func NewTimeFrame(start, end int) (TimeFrame, error) {
	if err := errors.Join(
		ValidateEncodedTime("startTime", start),
		ValidateEncodedTime("endTime", end),
	); err != nil {
		return TimeFrame{}, err
	}
	if start >= end {
		return TimeFrame{}, errs.NewValueIsInvalidErrorWithCause(
			"timeFrame",
			fmt.Errorf("start %d is not before end %d", start, end),
		)
	}

	return TimeFrame{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

func (f TimeFrame) Start() int {
	return f.start
}

func (f TimeFrame) End() int {
	return f.end
}

func (f TimeFrame) Validate() error {
	return f.guard.Validate(ErrTimeFrameIsNotConstructed)
}

// Equals compares frames by value. Slots of one shop never partially overlap, so equality
// is the collision rule used by booking checks.
func (f TimeFrame) Equals(other TimeFrame) bool {
	return f.start == other.start && f.end == other.end
}

// Label renders the frame as "HH:mm - HH:mm".
func (f TimeFrame) Label() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", f.start/100, f.start%100, f.end/100, f.end%100)
}

func (f TimeFrame) String() string {
	return f.Label()
}

// StartOn and EndOn anchor the frame to the calendar date of day.
func (f TimeFrame) StartOn(day time.Time) time.Time {
	return StartOfSlot(day, f.start)
}

func (f TimeFrame) EndOn(day time.Time) time.Time {
	return StartOfSlot(day, f.end)
}
