//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	// UpdateStatus меняет статус заказа только если текущий статус равен
	// expected, иначе возвращает ErrOrderStatusConflict.
	UpdateStatus(ctx context.Context, orderID string, expected, next entities.OrderStatusType) error
	Cancel(ctx context.Context, orderID string, expected entities.OrderStatusType, reason string, cancelledAt time.Time) error
}

type CourierRepository interface {
	GetByID(ctx context.Context, courierID int64) (*entities.Courier, error)
	// HoldForAssignment переводит available -> assigned, не трогая счетчик
	// активных заказов. Курьер в любом другом статусе дает ErrCourierNotAvailable.
	HoldForAssignment(ctx context.Context, courierID int64) error
	// ReleaseHold возвращает курьера из assigned в статус, выведенный из
	// числа активных заказов.
	ReleaseHold(ctx context.Context, courierID int64) error
	// ConfirmActiveOrder увеличивает счетчик активных заказов с проверкой
	// емкости и переводит курьера в busy.
	ConfirmActiveOrder(ctx context.Context, courierID int64) error
	ReleaseActiveOrder(ctx context.Context, courierID int64) error
	// CompleteDelivery уменьшает счетчик активных заказов (не ниже нуля),
	// увеличивает счетчики доставок и заработка и пересчитывает статус.
	CompleteDelivery(ctx context.Context, courierID int64, earned float64) (*entities.Courier, error)
}

type AssignmentRepository interface {
	// Create вставляет назначение. Второе активное назначение на тот же
	// заказ дает ErrOrderAlreadyAssigned.
	Create(ctx context.Context, modify entities.AssignmentModify) (*entities.Assignment, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (*entities.Assignment, error)
	// Update применяет modify только если текущий статус назначения равен
	// expected, иначе возвращает ErrAssignmentStatusConflict.
	Update(ctx context.Context, assignmentID int64, expected entities.AssignmentStatusType, modify entities.AssignmentModify) (*entities.Assignment, error)
}

type OfferRepository interface {
	Create(ctx context.Context, modify entities.BroadcastOfferModify) error
	GetLive(ctx context.Context, orderID string, courierID int64, now time.Time) (*entities.BroadcastOffer, error)
	DeleteByOrderID(ctx context.Context, orderID string) (int64, error)
}

type EarningRepository interface {
	Create(ctx context.Context, modify entities.EarningModify) (*entities.Earning, error)
}

type VendorRepository interface {
	GetByID(ctx context.Context, vendorID string) (*entities.Vendor, error)
}

type CourierSelector interface {
	BestMatch(ctx context.Context, order *entities.Order) (*entities.RankedCourier, error)
	RankWithinRadius(ctx context.Context, order *entities.Order, radiusKm float64) ([]entities.RankedCourier, error)
}

type FeeCalculator interface {
	Compute(order *entities.Order, vendor *entities.Vendor, courier *entities.Courier, tip float64, now time.Time) entities.FeeBreakdown
}

type NotificationGateway interface {
	Send(ctx context.Context, notification entities.Notification) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
