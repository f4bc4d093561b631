package commands

import (
	"errors"
	"strings"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var ErrRegisterShopCommandIsNotConstructed = errors.New(
	"RegisterShopCommand must be created via NewRegisterShopCommand constructor",
)

// RegisterShopCommand makes a marketplace shop known to the delivery engine.
type RegisterShopCommand struct {
	shopID         kernel.UUID
	ownerAccountID kernel.UUID
	name           string

	guard guard.ConstructorGuard
}

func NewRegisterShopCommand(shopID, ownerAccountID kernel.UUID, name string) (RegisterShopCommand, error) {
	var problems []error
	if err := shopID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("shopID", err))
	}
	if err := ownerAccountID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("ownerAccountID", err))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		problems = append(problems, shop.ErrNameIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return RegisterShopCommand{}, err
	}

	return RegisterShopCommand{
		shopID:         shopID,
		ownerAccountID: ownerAccountID,
		name:           name,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterShopCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShopCommandIsNotConstructed)
}

func (c RegisterShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c RegisterShopCommand) OwnerAccountID() kernel.UUID {
	return c.ownerAccountID
}

func (c RegisterShopCommand) Name() string {
	return c.name
}
