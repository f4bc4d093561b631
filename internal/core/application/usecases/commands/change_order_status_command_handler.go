package commands

import (
	"context"
	"errors"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/order"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/pkg/errs"
)

type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeOrder(ctx, h.uowFactory, cmd.ShopID(), cmd.OrderID(), (*order.Order).Confirm)
}

type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPrepareOrderCommandHandler(uowFactory OrderUoWFactory) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{uowFactory: uowFactory}
}

func (h PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeOrder(ctx, h.uowFactory, cmd.ShopID(), cmd.OrderID(), (*order.Order).Prepare)
}

// changeOrder loads an order of shopID, applies transition and stores it. Orders of other
// shops are reported as not found.
func changeOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	shopID, orderID kernel.UUID,
	transition func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.NewOrderNotFoundError(orderID)
	}
	if err != nil {
		return err
	}
	if !o.BelongsTo(shopID) {
		return services.NewOrderNotFoundError(orderID)
	}

	if err = transition(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
