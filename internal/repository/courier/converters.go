package courier

import (
	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:                  c.ID,
		UserID:              c.UserID,
		Name:                c.Name,
		Phone:               c.Phone,
		IsActive:            c.IsActive,
		Status:              entities.CourierStatusType(c.Status),
		VehicleType:         entities.CourierVehicleType(c.VehicleType),
		CurrentActiveOrders: c.CurrentActiveOrders,
		MaxActiveOrders:     c.MaxActiveOrders,
		Latitude:            c.Latitude,
		Longitude:           c.Longitude,
		LastLocationUpdate:  c.LastLocationUpdate,
		AverageRating:       c.AverageRating,
		TotalDeliveries:     c.TotalDeliveries,
		TotalEarnings:       c.TotalEarnings,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func ToDomainList(models []CourierDB) []entities.Courier {
	couriers := make([]entities.Courier, 0, len(models))
	for i := range models {
		couriers = append(couriers, *ToDomain(&models[i]))
	}
	return couriers
}

func FromDomainModify(c *entities.CourierModify) *CourierModifyDB {
	if c == nil {
		return nil
	}

	courierModifyDB := &CourierModifyDB{
		ID:                 c.ID,
		UserID:             c.UserID,
		Name:               c.Name,
		Phone:              c.Phone,
		IsActive:           c.IsActive,
		MaxActiveOrders:    c.MaxActiveOrders,
		Latitude:           c.Latitude,
		Longitude:          c.Longitude,
		LastLocationUpdate: c.LastLocationUpdate,
	}

	if c.Status != nil {
		courierModifyDB.Status = pointer.ToString(c.Status.String())
	}
	if c.VehicleType != nil {
		courierModifyDB.VehicleType = pointer.ToString(c.VehicleType.String())
	}

	return courierModifyDB
}
