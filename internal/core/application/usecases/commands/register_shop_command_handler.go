package commands

import (
	"context"

	"shopdelivery/internal/core/domain/model/shop"
)

type RegisterShopCommandHandler struct {
	uowFactory ShopUoWFactory
}

func NewRegisterShopCommandHandler(uowFactory ShopUoWFactory) RegisterShopCommandHandler {
	return RegisterShopCommandHandler{uowFactory: uowFactory}
}

func (h RegisterShopCommandHandler) Handle(ctx context.Context, cmd RegisterShopCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := shop.NewShop(cmd.ShopID(), cmd.OwnerAccountID(), cmd.Name())
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

	if err = uow.ShopRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
