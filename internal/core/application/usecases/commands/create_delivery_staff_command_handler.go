package commands

import (
	"context"

	"shopdelivery/internal/core/domain/model/staff"
)

type CreateDeliveryStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewCreateDeliveryStaffCommandHandler(uowFactory StaffUoWFactory) CreateDeliveryStaffCommandHandler {
	return CreateDeliveryStaffCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new member as Available after checking the shop exists.
func (h CreateDeliveryStaffCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	member, err := staff.NewStaff(cmd.StaffID(), cmd.ShopID(), cmd.AccountID(), cmd.FullName(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ShopRepository().Get(ctx, cmd.ShopID()); err != nil {
		return err
	}

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
