package deliverypackage

import (
	"errors"
	"fmt"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
)

// FulfillerKind tells which lookup space a fulfiller id lives in.
type FulfillerKind int

const (
	UnknownFulfiller FulfillerKind = iota
	StaffFulfiller
	ShopFulfiller
)

var ErrFulfillerIsNotConstructed = errors.New("Fulfiller must be created via NewStaffFulfiller or NewShopFulfiller")

func (k FulfillerKind) String() string {
	switch k {
	case StaffFulfiller:
		return "staff"
	case ShopFulfiller:
		return "shop"
	case UnknownFulfiller:
		return "unknown"
	default:
		return "unknown"
	}
}

// Fulfiller is whoever delivers a package: Staff(id) or Shop(id) for self-delivery.
type Fulfiller struct {
	kind FulfillerKind
	id   kernel.UUID
}

// NewStaffFulfiller and NewShopFulfiller reject a zero id.
func NewStaffFulfiller(staffID kernel.UUID) (Fulfiller, error) {
	return newFulfiller(StaffFulfiller, staffID)
}

func NewShopFulfiller(shopID kernel.UUID) (Fulfiller, error) {
	return newFulfiller(ShopFulfiller, shopID)
}

// RestoreFulfiller rebuilds a fulfiller from its persisted kind and id.
func RestoreFulfiller(kind FulfillerKind, id kernel.UUID) (Fulfiller, error) {
	if kind != StaffFulfiller && kind != ShopFulfiller {
		return Fulfiller{}, errs.NewValueIsInvalidErrorWithCause("fulfillerKind", fmt.Errorf("%d is not a fulfiller kind", kind))
	}
	return newFulfiller(kind, id)
}

func newFulfiller(kind FulfillerKind, id kernel.UUID) (Fulfiller, error) {
	if err := id.Validate(); err != nil {
		return Fulfiller{}, errs.NewValueIsInvalidErrorWithCause(kind.String()+"ID", err)
	}
	return Fulfiller{kind: kind, id: id}, nil
}

func (f Fulfiller) Validate() error {
	if f.kind == UnknownFulfiller {
		return ErrFulfillerIsNotConstructed
	}
	return nil
}

func (f Fulfiller) Kind() FulfillerKind {
	return f.kind
}

func (f Fulfiller) ID() kernel.UUID {
	return f.id
}

// StaffID returns the staff id for Staff fulfillers.
func (f Fulfiller) StaffID() (kernel.UUID, bool) {
	return f.id, f.kind == StaffFulfiller
}

// ShopID returns the shop id for self-delivery fulfillers.
func (f Fulfiller) ShopID() (kernel.UUID, bool) {
	return f.id, f.kind == ShopFulfiller
}

func (f Fulfiller) IsStaff() bool {
	return f.kind == StaffFulfiller
}

func (f Fulfiller) Equals(other Fulfiller) bool {
	return f.kind == other.kind && f.id.IsEqual(other.id)
}

func (f Fulfiller) String() string {
	return f.kind.String() + ":" + f.id.String()
}
