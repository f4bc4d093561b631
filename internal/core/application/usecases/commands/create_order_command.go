package commands

import (
	"errors"
	"strings"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a checked-out order with the packaging engine. The order
// starts Pending; the shop confirms and prepares it before it can be packaged.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, shopID, clock.Today(), 900, 1000,
//	    decimal.RequireFromString("2.5"), "B2")
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	shopID              kernel.UUID
	intendedReceiveDate time.Time
	timeFrame           kernel.TimeFrame
	totalWeight         kernel.Weight
	destination         string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	shopID kernel.UUID,
	intendedReceiveDate time.Time,
	startTime, endTime int,
	totalWeight decimal.Decimal,
	destination string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		intendedReceiveDate: intendedReceiveDate,
		destination:         strings.TrimSpace(destination),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopID(shopID),
		cmd.setTimeFrame(startTime, endTime),
		cmd.setTotalWeight(totalWeight),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c CreateOrderCommand) IntendedReceiveDate() time.Time {
	return c.intendedReceiveDate
}

func (c CreateOrderCommand) TimeFrame() kernel.TimeFrame {
	return c.timeFrame
}

func (c CreateOrderCommand) TotalWeight() kernel.Weight {
	return c.totalWeight
}

func (c CreateOrderCommand) Destination() string {
	return c.destination
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	c.shopID = shopID
	return nil
}

func (c *CreateOrderCommand) setTimeFrame(start, end int) error {
	frame, err := kernel.NewTimeFrame(start, end)
	if err != nil {
		return err
	}
	c.timeFrame = frame
	return nil
}

func (c *CreateOrderCommand) setTotalWeight(kg decimal.Decimal) error {
	weight, err := kernel.NewWeight(kg)
	if err != nil {
		return err
	}
	c.totalWeight = weight
	return nil
}
