package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assignmentColumns = `id, order_id, courier_id, status, is_active, delivery_fee, tip,
		reject_reason, assigned_at, accepted_at, rejected_at, picked_up_at,
		delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет назначение. Частичный уникальный индекс по активным
// строкам превращает второе активное назначение заказа в 23505: это и есть
// арбитр гонки конкурентных Assign/Accept.
func (r *Repository) Create(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error) {
	query := `
		INSERT INTO assignments (order_id, courier_id, status, is_active, delivery_fee, assigned_at, accepted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + assignmentColumns

	modifyModel := FromDomainModify(assignmentModify)

	assignmentModel, err := r.scanAssignment(r.querier.QueryRow(
		ctx,
		query,
		modifyModel.OrderID,
		modifyModel.CourierID,
		modifyModel.Status,
		modifyModel.IsActive,
		modifyModel.DeliveryFee,
		modifyModel.AssignedAt,
		modifyModel.AcceptedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.Assignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE order_id = $1 AND is_active`

	assignmentModel, err := r.scanAssignment(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get active error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

// Update — CAS по статусу назначения: строка меняется только из ожидаемого
// статуса, иначе конфликт.
func (r *Repository) Update(ctx context.Context, assignmentID int64, expected entities.AssignmentStatusType, assignmentModify entities.AssignmentModify) (*entities.Assignment, error) {
	modifyModel := FromDomainModify(assignmentModify)

	builder := qb.
		Update("assignments")

	if modifyModel.Status != nil {
		builder = builder.Set("status", modifyModel.Status)
	}
	if modifyModel.IsActive != nil {
		builder = builder.Set("is_active", modifyModel.IsActive)
	}
	if modifyModel.Tip != nil {
		builder = builder.Set("tip", modifyModel.Tip)
	}
	if modifyModel.RejectReason != nil {
		builder = builder.Set("reject_reason", modifyModel.RejectReason)
	}
	if modifyModel.AcceptedAt != nil {
		builder = builder.Set("accepted_at", modifyModel.AcceptedAt)
	}
	if modifyModel.RejectedAt != nil {
		builder = builder.Set("rejected_at", modifyModel.RejectedAt)
	}
	if modifyModel.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", modifyModel.PickedUpAt)
	}
	if modifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", modifyModel.DeliveredAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": assignmentID, "status": expected.String()}).
		Suffix("RETURNING " + assignmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	assignmentModel, err := r.scanAssignment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrAssignmentStatusConflict
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(assignmentModel), nil
}

func (r *Repository) scanAssignment(row pgx.Row) (*AssignmentDB, error) {
	var assignmentModel AssignmentDB
	err := row.Scan(
		&assignmentModel.ID,
		&assignmentModel.OrderID,
		&assignmentModel.CourierID,
		&assignmentModel.Status,
		&assignmentModel.IsActive,
		&assignmentModel.DeliveryFee,
		&assignmentModel.Tip,
		&assignmentModel.RejectReason,
		&assignmentModel.AssignedAt,
		&assignmentModel.AcceptedAt,
		&assignmentModel.RejectedAt,
		&assignmentModel.PickedUpAt,
		&assignmentModel.DeliveredAt,
		&assignmentModel.CreatedAt,
		&assignmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentModel, nil
}
