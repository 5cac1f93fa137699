package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

const offerColumns = `id, order_id, courier_id, delivery_fee, offered_at, expires_at`

type OffersRepository struct {
	querier Querier
}

func NewOffers(querier Querier) *OffersRepository {
	return &OffersRepository{
		querier: querier,
	}
}

// Create перезаписывает предложение той же паре заказ-курьер: повторная
// рассылка продлевает срок и обновляет котировку вместо дубля.
func (r *OffersRepository) Create(ctx context.Context, offerModify entities.BroadcastOfferModify) error {
	query := `
		INSERT INTO broadcast_offers (order_id, courier_id, delivery_fee, offered_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, courier_id) DO UPDATE SET
			delivery_fee = EXCLUDED.delivery_fee,
			offered_at = EXCLUDED.offered_at,
			expires_at = EXCLUDED.expires_at`

	_, err := r.querier.Exec(
		ctx,
		query,
		offerModify.OrderID,
		offerModify.CourierID,
		offerModify.DeliveryFee,
		offerModify.OfferedAt,
		offerModify.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected offer repository create error: %w", err)
	}

	return nil
}

// GetLive достает предложение и проверяет срок на стороне сервиса: протухшее
// предложение отличимо от отсутствующего.
func (r *OffersRepository) GetLive(ctx context.Context, orderID string, courierID int64, now time.Time) (*entities.BroadcastOffer, error) {
	query := `SELECT ` + offerColumns + `
		FROM broadcast_offers
		WHERE order_id = $1 AND courier_id = $2`

	var offerModel BroadcastOfferDB
	err := r.querier.QueryRow(ctx, query, orderID, courierID).Scan(
		&offerModel.ID,
		&offerModel.OrderID,
		&offerModel.CourierID,
		&offerModel.DeliveryFee,
		&offerModel.OfferedAt,
		&offerModel.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrNoOffer
		}
		return nil, fmt.Errorf("unexpected offer repository get error: %w", err)
	}

	if !offerModel.ExpiresAt.After(now) {
		return nil, dispatch.ErrOfferExpired
	}

	return ToOfferDomain(&offerModel), nil
}

func (r *OffersRepository) DeleteByOrderID(ctx context.Context, orderID string) (int64, error) {
	commandTag, err := r.querier.Exec(ctx, `DELETE FROM broadcast_offers WHERE order_id = $1`, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository delete error: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func (r *OffersRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	commandTag, err := r.querier.Exec(ctx, `DELETE FROM broadcast_offers WHERE expires_at <= $1`, before)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository delete expired error: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
