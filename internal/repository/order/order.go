package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const orderColumns = `id, short_code, vendor_id, customer_id, total_amount, status,
		cancel_reason, cancelled_at, delivery_latitude, delivery_longitude,
		estimated_delivery_time, created_at, updated_at`

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.ShortCode,
		&orderDB.VendorID,
		&orderDB.CustomerID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.CancelReason,
		&orderDB.CancelledAt,
		&orderDB.DeliveryLatitude,
		&orderDB.DeliveryLongitude,
		&orderDB.EstimatedDeliveryTime,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// UpdateStatus — CAS по статусу: ноль затронутых строк означает, что заказ
// конкурентно ушел из ожидаемого статуса (наличие строки проверяет GetByID
// в той же транзакции).
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, expected, next entities.OrderStatusType) error {
	query := `UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2`

	result, err := r.querier.Exec(ctx, query, orderID, expected.String(), next.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrOrderStatusConflict
	}

	return nil
}

func (r *Repository) Cancel(ctx context.Context, orderID string, expected entities.OrderStatusType, reason string, cancelledAt time.Time) error {
	query := `UPDATE orders
		SET status = $3, cancel_reason = $4, cancelled_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = $2`

	result, err := r.querier.Exec(
		ctx,
		query,
		orderID,
		expected.String(),
		entities.OrderCancelled.String(),
		reason,
		cancelledAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrOrderStatusConflict
	}

	return nil
}

// Upsert зеркалирует заказ из события апстрима. Статус пишется как есть:
// валидность перехода проверяет сервис заказов до вызова.
func (r *Repository) Upsert(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, short_code, vendor_id, customer_id, total_amount, status,
			delivery_latitude, delivery_longitude, estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			total_amount = EXCLUDED.total_amount,
			delivery_latitude = EXCLUDED.delivery_latitude,
			delivery_longitude = EXCLUDED.delivery_longitude,
			estimated_delivery_time = EXCLUDED.estimated_delivery_time,
			updated_at = NOW()
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.ShortCode,
		orderEntity.VendorID,
		orderEntity.CustomerID,
		orderEntity.TotalAmount,
		orderEntity.Status.String(),
		orderEntity.DeliveryLatitude,
		orderEntity.DeliveryLongitude,
		orderEntity.EstimatedDeliveryTime,
	).Scan(
		&orderDB.ID,
		&orderDB.ShortCode,
		&orderDB.VendorID,
		&orderDB.CustomerID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.CancelReason,
		&orderDB.CancelledAt,
		&orderDB.DeliveryLatitude,
		&orderDB.DeliveryLongitude,
		&orderDB.EstimatedDeliveryTime,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository upsert error: %w", err)
	}

	return ToDomain(&orderDB), nil
}
