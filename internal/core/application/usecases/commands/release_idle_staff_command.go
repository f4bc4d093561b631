package commands

import (
	"errors"

	"shopdelivery/internal/pkg/guard"
)

var ErrReleaseIdleStaffCommandIsNotConstructed = errors.New(
	"ReleaseIdleStaffCommand must be created via NewReleaseIdleStaffCommand constructor",
)

// ReleaseIdleStaffCommand returns Busy staff members without an active package to
// Available. It is triggered periodically by the staff release job.
type ReleaseIdleStaffCommand struct {
	guard guard.ConstructorGuard
}

func NewReleaseIdleStaffCommand() ReleaseIdleStaffCommand {
	return ReleaseIdleStaffCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReleaseIdleStaffCommand) Validate() error {
	return c.guard.Validate(ErrReleaseIdleStaffCommandIsNotConstructed)
}
