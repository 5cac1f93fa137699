package courier

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
	clock      Clock
}

func New(repository Repository, clock Clock) *Courier {
	return &Courier{
		repository: repository,
		clock:      clock,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.VehicleType == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidVehicle(courierModify.VehicleType.String()) {
		return 0, ErrInvalidVehicle
	}
	if courierModify.MaxActiveOrders != nil && *courierModify.MaxActiveOrders <= 0 {
		return 0, ErrInvalidCapacity
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}

	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.IsActive == nil &&
		courierModify.Status == nil &&
		courierModify.VehicleType == nil &&
		courierModify.MaxActiveOrders == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if courierModify.VehicleType != nil && !isValidVehicle(courierModify.VehicleType.String()) {
		return nil, ErrInvalidVehicle
	}
	if courierModify.MaxActiveOrders != nil && *courierModify.MaxActiveOrders <= 0 {
		return nil, ErrInvalidCapacity
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

// UpdateLocation фиксирует пинг геопозиции курьера. Время пинга ставит
// сервис, а не клиент: на него завязана граница свежести в подборе.
func (s *Courier) UpdateLocation(ctx context.Context, courierID int64, latitude, longitude float64) (*entities.Courier, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if !isValidLatitude(latitude) || !isValidLongitude(longitude) {
		return nil, ErrInvalidLocation
	}

	now := s.clock.Now().UTC()

	courier, err := s.repository.Update(ctx, entities.CourierModify{
		ID:                 &courierID,
		Latitude:           &latitude,
		Longitude:          &longitude,
		LastLocationUpdate: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update courier location: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}
