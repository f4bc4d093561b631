package commands

import (
	"context"
)

type ReleaseIdleStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewReleaseIdleStaffCommandHandler(uowFactory StaffUoWFactory) ReleaseIdleStaffCommandHandler {
	return ReleaseIdleStaffCommandHandler{uowFactory: uowFactory}
}

// Handle releases every idle Busy member in one transaction and reports how many changed.
func (h ReleaseIdleStaffCommandHandler) Handle(ctx context.Context, cmd ReleaseIdleStaffCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	idle, err := staffRepo.GetAllBusyWithoutActivePackage(ctx)
	if err != nil {
		return 0, err
	}
	if len(idle) == 0 {
		return 0, nil
	}

	for _, member := range idle {
		member.Release()
		if err = staffRepo.Update(ctx, member); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(idle), nil
}
