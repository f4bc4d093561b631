package commands

import (
	"errors"
	"strings"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var ErrCreateDeliveryStaffCommandIsNotConstructed = errors.New(
	"CreateDeliveryStaffCommand must be created via NewCreateDeliveryStaffCommand constructor",
)

// CreateDeliveryStaffCommand registers a delivery staff member of the acting shop. The id
// is generated here so the caller can report it once the command succeeds.
type CreateDeliveryStaffCommand struct { //nolint:recvcheck //using for validation
	staffID   kernel.UUID
	shopID    kernel.UUID
	accountID kernel.UUID
	fullName  string
	phone     string

	guard guard.ConstructorGuard
}

func NewCreateDeliveryStaffCommand(
	shopID, accountID kernel.UUID,
	fullName, phone string,
) (CreateDeliveryStaffCommand, error) {
	cmd := CreateDeliveryStaffCommand{
		staffID: kernel.NewUUID(),
		phone:   strings.TrimSpace(phone),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopID(shopID),
		cmd.setAccountID(accountID),
		cmd.setFullName(fullName),
	); err != nil {
		return CreateDeliveryStaffCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryStaffCommandIsNotConstructed)
}

func (c CreateDeliveryStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c CreateDeliveryStaffCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c CreateDeliveryStaffCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c CreateDeliveryStaffCommand) FullName() string {
	return c.fullName
}

func (c CreateDeliveryStaffCommand) Phone() string {
	return c.phone
}

func (c *CreateDeliveryStaffCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	c.shopID = id
	return nil
}

func (c *CreateDeliveryStaffCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("accountID", err)
	}
	c.accountID = id
	return nil
}

func (c *CreateDeliveryStaffCommand) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return staff.ErrNameIsRequired
	}
	c.fullName = name
	return nil
}
