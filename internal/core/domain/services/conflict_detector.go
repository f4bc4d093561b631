package services

import (
	"time"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
)

// Booking is a candidate claim of one fulfiller on one time frame.
type Booking struct {
	Fulfiller deliverypackage.Fulfiller
	TimeFrame kernel.TimeFrame
}

// ConflictDetector enforces at most one package per fulfiller per time frame per day.
//
// Frames are compared by equality: a shop's operating slots never partially overlap, so
// equality is the same test as interval overlap for them.
type ConflictDetector struct{}

func NewConflictDetector() ConflictDetector {
	return ConflictDetector{}
}

// Detect checks candidates against the fulfillers' existing packages on date and against
// each other.
func (ConflictDetector) Detect(
	date time.Time,
	candidates []Booking,
	existing []*deliverypackage.DeliveryPackage,
) error {
	for i, c := range candidates {
		for _, prev := range candidates[:i] {
			if prev.Fulfiller.Equals(c.Fulfiller) && prev.TimeFrame.Equals(c.TimeFrame) {
				return NewFulfillerAlreadyBookedError(c.Fulfiller, c.TimeFrame)
			}
		}
		for _, p := range existing {
			if p.Occupies(c.Fulfiller, date, c.TimeFrame) {
				return NewFulfillerAlreadyBookedError(c.Fulfiller, c.TimeFrame)
			}
		}
	}
	return nil
}
