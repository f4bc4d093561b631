// Package shop models the shop as a delivery fulfiller: when no staff member is named,
// the shop delivers a package itself.
package shop

import (
	"errors"
	"strings"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
	"shopdelivery/internal/pkg/guard"
)

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")
)

// Shop is the aggregate root for a registered shop. Its id doubles as the fulfiller id of
// self-delivered packages.
type Shop struct {
	id             kernel.UUID
	ownerAccountID kernel.UUID
	name           string
	guard          guard.ConstructorGuard
}

// NewShop trims name and reports every invalid argument at once.
func NewShop(id, ownerAccountID kernel.UUID, name string) (*Shop, error) {
	s := &Shop{guard: guard.NewConstructorGuard()}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(id.Validate(), ownerAccountID.Validate(), nameErr); err != nil {
		return nil, err
	}

	s.id = id
	s.ownerAccountID = ownerAccountID
	s.name = name
	return s, nil
}

func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

func (s *Shop) ID() kernel.UUID {
	return s.id
}

func (s *Shop) OwnerAccountID() kernel.UUID {
	return s.ownerAccountID
}

func (s *Shop) Name() string {
	return s.name
}
