package commands

import (
	"errors"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrPrepareOrderCommandIsNotConstructed = errors.New(
		"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
	)
)

// orderTarget names an order of the acting shop.
type orderTarget struct {
	shopID  kernel.UUID
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderTarget(shopID, orderID kernel.UUID) (orderTarget, error) {
	var problems []error
	if err := shopID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("shopID", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("orderID", err))
	}
	if err := errors.Join(problems...); err != nil {
		return orderTarget{}, err
	}
	return orderTarget{shopID: shopID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (t orderTarget) ShopID() kernel.UUID {
	return t.shopID
}

func (t orderTarget) OrderID() kernel.UUID {
	return t.orderID
}

// ConfirmOrderCommand is the shop accepting a Pending order.
type ConfirmOrderCommand struct {
	orderTarget
}

func NewConfirmOrderCommand(shopID, orderID kernel.UUID) (ConfirmOrderCommand, error) {
	target, err := newOrderTarget(shopID, orderID)
	if err != nil {
		return ConfirmOrderCommand{}, err
	}
	return ConfirmOrderCommand{orderTarget: target}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// PrepareOrderCommand moves a Confirmed order into Preparing, the only packageable status.
type PrepareOrderCommand struct {
	orderTarget
}

func NewPrepareOrderCommand(shopID, orderID kernel.UUID) (PrepareOrderCommand, error) {
	target, err := newOrderTarget(shopID, orderID)
	if err != nil {
		return PrepareOrderCommand{}, err
	}
	return PrepareOrderCommand{orderTarget: target}, nil
}

func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}
