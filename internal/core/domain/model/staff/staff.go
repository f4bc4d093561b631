package staff

import (
	"errors"
	"fmt"
	"strings"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

const maxNameLength = 255

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("fullName")
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

// Staff is a shop delivery staff member, one of the two kinds of package fulfillers.
//
// Availability is never set directly. Assign marks the member Busy when a package is
// bound to them and Release returns them to Available once no active package is left,
// so the "busy implies bound to an active package" rule lives in one place.
type Staff struct {
	id        kernel.UUID
	shopID    kernel.UUID
	accountID kernel.UUID
	fullName  string
	phone     string
	status    Status
	guard     guard.ConstructorGuard
}

// NewStaff registers an Available staff member of a shop. accountID is the user account
// that receives assignment notifications.
func NewStaff(id, shopID, accountID kernel.UUID, fullName, phone string) (*Staff, error) {
	s := &Staff{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setShopID(shopID),
		s.setAccountID(accountID),
		s.setFullName(fullName),
	); err != nil {
		return nil, err
	}
	s.phone = strings.TrimSpace(phone)

	return s, nil
}

// RestoreStaff rebuilds a staff member from storage.
func RestoreStaff(id, shopID, accountID kernel.UUID, fullName, phone string, status Status) (*Staff, error) {
	s, err := NewStaff(id, shopID, accountID, fullName, phone)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	return s, nil
}

func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

func (s *Staff) ID() kernel.UUID {
	return s.id
}

func (s *Staff) ShopID() kernel.UUID {
	return s.shopID
}

func (s *Staff) AccountID() kernel.UUID {
	return s.accountID
}

func (s *Staff) FullName() string {
	return s.fullName
}

func (s *Staff) Phone() string {
	return s.phone
}

func (s *Staff) Status() Status {
	return s.status
}

func (s *Staff) IsBusy() bool {
	return s.status == Busy
}

// WorksFor reports whether the staff member belongs to the given shop.
func (s *Staff) WorksFor(shopID kernel.UUID) bool {
	return s.shopID.IsEqual(shopID)
}

// Assign binds the member to a package. Members already busy in another slot of the day
// stay Busy; double booking of one slot is prevented by the booking check, not here.
func (s *Staff) Assign() {
	s.status = Busy
}

// Release frees the member after their last active package ended.
func (s *Staff) Release() {
	s.status = Available
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopID", err)
	}
	s.shopID = shopID
	return nil
}

func (s *Staff) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("accountID", err)
	}
	s.accountID = accountID
	return nil
}

func (s *Staff) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("fullName", fmt.Errorf("longer than %d characters", maxNameLength))
	}
	s.fullName = name
	return nil
}
