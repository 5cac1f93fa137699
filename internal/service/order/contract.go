//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	Upsert(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
}

type DispatchService interface {
	AutoAssign(ctx context.Context, orderID string) (*entities.Assignment, error)
	Broadcast(ctx context.Context, orderID string, radiusKm float64) (int, error)
	CancelOrder(ctx context.Context, orderID string, reason string) error
}

type (
	ExecuteFn      func(ctx context.Context, order *entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
