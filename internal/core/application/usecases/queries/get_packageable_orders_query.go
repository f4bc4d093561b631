package queries

import (
	"errors"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/guard"
)

var ErrGetPackageableOrdersQueryIsNotConstructed = errors.New(
	"GetPackageableOrdersQuery must be created via NewGetPackageableOrdersQuery constructor",
)

// GetPackageableOrdersQuery lists today's Preparing orders of a shop that no package holds
// yet, the candidates of the next packaging batch.
type GetPackageableOrdersQuery struct {
	shopID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetPackageableOrdersQuery(shopID kernel.UUID) (GetPackageableOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetPackageableOrdersQuery{}, err
	}
	return GetPackageableOrdersQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageableOrdersQueryIsNotConstructed)
}

func (q GetPackageableOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}

type GetPackageableOrdersQueryResponse struct {
	ID          kernel.UUID
	TimeFrame   kernel.TimeFrame
	Weight      kernel.Weight
	Destination string
}
