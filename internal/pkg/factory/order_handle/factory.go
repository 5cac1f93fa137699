package order_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
	"dispatch/internal/service/selector"
)

const fallbackCancelReason = "cancelled upstream"

type StatusHandlerFactory struct {
	dispatchService order.DispatchService
}

func NewStatusHandlerFactory(dispatchService order.DispatchService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService: dispatchService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderReady:
		return f.readyHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// readyHandler пробует автоназначение, при пустом пуле курьеров переходит
// на рассылку предложений в радиусе из конфига.
func (f *StatusHandlerFactory) readyHandler(ctx context.Context, orderEntity *entities.Order) error {
	_, err := f.dispatchService.AutoAssign(ctx, orderEntity.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, selector.ErrNoAvailableCouriers) {
		return fmt.Errorf("auto-assign courier for ready order %s: %w", orderEntity.ID, err)
	}

	if _, err := f.dispatchService.Broadcast(ctx, orderEntity.ID, 0); err != nil {
		return fmt.Errorf("broadcast ready order %s: %w", orderEntity.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderEntity *entities.Order) error {
	reason := orderEntity.CancelReason
	if reason == "" {
		reason = fallbackCancelReason
	}

	if err := f.dispatchService.CancelOrder(ctx, orderEntity.ID, reason); err != nil {
		return fmt.Errorf("cancel order %s: %w", orderEntity.ID, err)
	}
	return nil
}
