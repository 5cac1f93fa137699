package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

type Service struct {
	orders        OrderRepository
	statusFactory HandlerFactory
}

func New(orders OrderRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		orders:        orders,
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange зеркалирует снапшот заказа из события апстрима и
// запускает обработчик нового статуса. Повторная доставка того же статуса —
// no-op, переход вне графа — ошибка.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderEvent entities.Order) (*entities.Order, error) {
	if orderEvent.ID == "" || orderEvent.Status == "" {
		return nil, ErrMissingEventKey
	}

	isNew := false

	current, err := s.orders.GetByID(ctx, orderEvent.ID)
	switch {
	case errors.Is(err, dispatch.ErrOrderNotFound):
		isNew = true
	case err != nil:
		return nil, fmt.Errorf("get order %q: %w", orderEvent.ID, err)
	default:
		if current.Status == orderEvent.Status {
			// повторная доставка события
			return current, nil
		}
		if !current.Status.CanTransitionTo(orderEvent.Status) {
			return current, fmt.Errorf("%w: %s -> %s",
				dispatch.ErrInvalidStatusTransition, current.Status, orderEvent.Status)
		}
	}

	mirror := orderEvent
	if orderEvent.Status == entities.OrderCancelled && !isNew {
		// Отмену проводит диспетчер: CAS по статусу заказа плюс освобождение
		// курьера. Зеркалим остальные поля, статус не трогаем.
		mirror.Status = current.Status
	}

	order, err := s.orders.Upsert(ctx, mirror)
	if err != nil {
		return nil, fmt.Errorf("upsert order %q: %w", orderEvent.ID, err)
	}

	if orderEvent.Status == entities.OrderCancelled && isNew {
		// Заказ не был известен диспетчеру — освобождать нечего.
		return order, nil
	}

	executeFn, err := s.statusFactory.GetHandler(orderEvent.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, &orderEvent); err != nil {
		return nil, err
	}

	return order, nil
}
