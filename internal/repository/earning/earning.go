package earning

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
)

const earningColumns = `id, courier_id, order_id, base_fee, distance_bonus, tip, total, is_paid, earned_at, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет строку леджера. Уникальный индекс по order_id гарантирует
// не больше одной выплаты на заказ.
func (r *Repository) Create(ctx context.Context, earningModify entities.EarningModify) (*entities.Earning, error) {
	query := `
		INSERT INTO earnings (courier_id, order_id, base_fee, distance_bonus, tip, total, earned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + earningColumns

	var earningModel EarningDB
	err := r.querier.QueryRow(
		ctx,
		query,
		earningModify.CourierID,
		earningModify.OrderID,
		earningModify.BaseFee,
		earningModify.DistanceBonus,
		earningModify.Tip,
		earningModify.Total,
		earningModify.EarnedAt,
	).Scan(
		&earningModel.ID,
		&earningModel.CourierID,
		&earningModel.OrderID,
		&earningModel.BaseFee,
		&earningModel.DistanceBonus,
		&earningModel.Tip,
		&earningModel.Total,
		&earningModel.IsPaid,
		&earningModel.EarnedAt,
		&earningModel.PaidAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrEarningAlreadyRecorded
		}
		return nil, fmt.Errorf("unexpected earning repository create error: %w", err)
	}

	return ToDomain(&earningModel), nil
}

// GetByCourierID возвращает строки леджера курьера, свежие первыми.
func (r *Repository) GetByCourierID(ctx context.Context, courierID int64) ([]entities.Earning, error) {
	query := `SELECT ` + earningColumns + `
		FROM earnings
		WHERE courier_id = $1
		ORDER BY earned_at DESC`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected earning repository get error: %w", err)
	}
	defer rows.Close()

	var earningModels []EarningDB
	for rows.Next() {
		var earningModel EarningDB
		err = rows.Scan(
			&earningModel.ID,
			&earningModel.CourierID,
			&earningModel.OrderID,
			&earningModel.BaseFee,
			&earningModel.DistanceBonus,
			&earningModel.Tip,
			&earningModel.Total,
			&earningModel.IsPaid,
			&earningModel.EarnedAt,
			&earningModel.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected earning repository scan error: %w", err)
		}
		earningModels = append(earningModels, earningModel)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected earning repository rows error: %w", err)
	}

	return ToDomainList(earningModels), nil
}
