package commands

import (
	"errors"
	"fmt"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPackagesCommandIsNotConstructed = errors.New(
		"CreateDeliveryPackagesCommand must be created via NewCreateDeliveryPackagesCommand constructor",
	)
	ErrNoPackagesRequested = errs.NewValueIsRequiredError("packages")
)

// CreateDeliveryPackagesCommand asks to group the acting shop's orders into packages, one
// per request, each delivered by the named staff member or by the shop itself.
//
// Confirmed is the caller's answer to an earlier early-assignment warning. Unconfirmed
// batches submitted too long before the slot come back with a warning and change nothing.
//
// Example:
//
//	cmd, err := NewCreateDeliveryPackagesCommand(shopID, []services.PackageRequest{
//	    {OrderIDs: []kernel.UUID{o1, o2}, StaffID: &staffID},
//	    {OrderIDs: []kernel.UUID{o3}},
//	}, false)
type CreateDeliveryPackagesCommand struct { //nolint:recvcheck //using for validation
	shopID    kernel.UUID
	packages  []services.PackageRequest
	confirmed bool

	guard guard.ConstructorGuard
}

func NewCreateDeliveryPackagesCommand(
	shopID kernel.UUID,
	packages []services.PackageRequest,
	confirmed bool,
) (CreateDeliveryPackagesCommand, error) {
	cmd := CreateDeliveryPackagesCommand{
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopID(shopID),
		cmd.setPackages(packages),
	); err != nil {
		return CreateDeliveryPackagesCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryPackagesCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPackagesCommandIsNotConstructed)
}

func (c CreateDeliveryPackagesCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Packages returns a copy of the requested packages.
func (c CreateDeliveryPackagesCommand) Packages() []services.PackageRequest {
	out := make([]services.PackageRequest, len(c.packages))
	for i, p := range c.packages {
		out[i] = copyRequest(p)
	}
	return out
}

// OrderIDs lists every referenced order id in request order, duplicates included.
func (c CreateDeliveryPackagesCommand) OrderIDs() []kernel.UUID {
	var ids []kernel.UUID
	for _, p := range c.packages {
		ids = append(ids, p.OrderIDs...)
	}
	return ids
}

func (c CreateDeliveryPackagesCommand) Confirmed() bool {
	return c.confirmed
}

func (c *CreateDeliveryPackagesCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	c.shopID = id
	return nil
}

func (c *CreateDeliveryPackagesCommand) setPackages(packages []services.PackageRequest) error {
	if len(packages) == 0 {
		return ErrNoPackagesRequested
	}

	var problems []error
	copied := make([]services.PackageRequest, 0, len(packages))
	for i, p := range packages {
		if len(p.OrderIDs) == 0 {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("packages[%d].orderIds", i)))
			continue
		}
		for j, id := range p.OrderIDs {
			if err := id.Validate(); err != nil {
				problems = append(problems,
					errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("packages[%d].orderIds[%d]", i, j), err))
			}
		}
		if p.StaffID != nil {
			if err := p.StaffID.Validate(); err != nil {
				problems = append(problems,
					errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("packages[%d].staffId", i), err))
			}
		}
		copied = append(copied, copyRequest(p))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	c.packages = copied
	return nil
}

func copyRequest(p services.PackageRequest) services.PackageRequest {
	ids := make([]kernel.UUID, len(p.OrderIDs))
	copy(ids, p.OrderIDs)

	var staffID *kernel.UUID
	if p.StaffID != nil {
		id := *p.StaffID
		staffID = &id
	}
	return services.PackageRequest{OrderIDs: ids, StaffID: staffID}
}
