package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, user_id, name, phone, is_active, status, vehicle_type,
		current_active_orders, max_active_orders, latitude, longitude,
		last_location_update, average_rating, total_deliveries, total_earnings,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	query := `INSERT INTO couriers (user_id, name, phone, vehicle_type, max_active_orders)
		VALUES ($1, $2, $3, $4, COALESCE($5, 3))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.UserID,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.VehicleType,
		courierModifyModel.MaxActiveOrders,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.IsActive != nil {
		builder = builder.Set("is_active", courierModifyModel.IsActive)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", courierModifyModel.VehicleType)
	}
	if courierModifyModel.MaxActiveOrders != nil {
		builder = builder.Set("max_active_orders", courierModifyModel.MaxActiveOrders)
	}
	if courierModifyModel.Latitude != nil {
		builder = builder.Set("latitude", courierModifyModel.Latitude)
	}
	if courierModifyModel.Longitude != nil {
		builder = builder.Set("longitude", courierModifyModel.Longitude)
	}
	if courierModifyModel.LastLocationUpdate != nil {
		builder = builder.Set("last_location_update", courierModifyModel.LastLocationUpdate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.UserID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.IsActive,
			&courierModel.Status,
			&courierModel.VehicleType,
			&courierModel.CurrentActiveOrders,
			&courierModel.MaxActiveOrders,
			&courierModel.Latitude,
			&courierModel.Longitude,
			&courierModel.LastLocationUpdate,
			&courierModel.AverageRating,
			&courierModel.TotalDeliveries,
			&courierModel.TotalEarnings,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// FindAvailable возвращает пул кандидатов для подбора: активные, доступные,
// со свободной емкостью и позицией не старше locationSince.
func (r *Repository) FindAvailable(ctx context.Context, locationSince time.Time) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE is_active
		  AND status = 'available'
		  AND current_active_orders < max_active_orders
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		  AND last_location_update >= $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, locationSince)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.UserID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.IsActive,
			&courierModel.Status,
			&courierModel.VehicleType,
			&courierModel.CurrentActiveOrders,
			&courierModel.MaxActiveOrders,
			&courierModel.Latitude,
			&courierModel.Longitude,
			&courierModel.LastLocationUpdate,
			&courierModel.AverageRating,
			&courierModel.TotalDeliveries,
			&courierModel.TotalEarnings,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// HoldForAssignment — условный перевод available -> assigned. Ноль строк
// означает, что курьер недоступен или занят под завязку.
func (r *Repository) HoldForAssignment(ctx context.Context, courierID int64) error {
	query := `UPDATE couriers
		SET status = 'assigned', updated_at = NOW()
		WHERE id = $1
		  AND is_active
		  AND status = 'available'
		  AND current_active_orders < max_active_orders`

	result, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository hold error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrCourierNotAvailable
	}

	return nil
}

// ReleaseHold возвращает курьера из транзитного assigned в статус,
// выведенный из счетчика активных заказов.
func (r *Repository) ReleaseHold(ctx context.Context, courierID int64) error {
	query := `UPDATE couriers
		SET status = CASE WHEN current_active_orders > 0 THEN 'busy' ELSE 'available' END,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'assigned'`

	result, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository release hold error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrCourierNotAvailable
	}

	return nil
}

// ConfirmActiveOrder — условный инкремент с проверкой емкости.
func (r *Repository) ConfirmActiveOrder(ctx context.Context, courierID int64) error {
	query := `UPDATE couriers
		SET current_active_orders = current_active_orders + 1,
		    status = 'busy',
		    updated_at = NOW()
		WHERE id = $1
		  AND is_active
		  AND current_active_orders < max_active_orders`

	result, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository confirm active order error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatch.ErrCourierAtCapacity
	}

	return nil
}

func (r *Repository) ReleaseActiveOrder(ctx context.Context, courierID int64) error {
	query := `UPDATE couriers
		SET current_active_orders = GREATEST(current_active_orders - 1, 0),
		    status = CASE WHEN current_active_orders - 1 > 0 THEN 'busy' ELSE 'available' END,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository release active order error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

// CompleteDelivery закрывает доставку на стороне курьера: счетчик вниз
// (не ниже нуля), доставки и заработок вверх, статус пересчитан.
func (r *Repository) CompleteDelivery(ctx context.Context, courierID int64, earned float64) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET current_active_orders = GREATEST(current_active_orders - 1, 0),
		    status = CASE WHEN current_active_orders - 1 > 0 THEN 'busy' ELSE 'available' END,
		    total_deliveries = total_deliveries + 1,
		    total_earnings = total_earnings + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courierColumns

	courierModel, err := r.scanCourier(r.querier.QueryRow(ctx, query, courierID, earned))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository complete delivery error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.UserID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.IsActive,
		&courierModel.Status,
		&courierModel.VehicleType,
		&courierModel.CurrentActiveOrders,
		&courierModel.MaxActiveOrders,
		&courierModel.Latitude,
		&courierModel.Longitude,
		&courierModel.LastLocationUpdate,
		&courierModel.AverageRating,
		&courierModel.TotalDeliveries,
		&courierModel.TotalEarnings,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &courierModel, nil
}
