package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:                    o.ID,
		ShortCode:             o.ShortCode,
		VendorID:              o.VendorID,
		CustomerID:            o.CustomerID,
		TotalAmount:           o.TotalAmount,
		Status:                entities.OrderStatusType(o.Status),
		CancelledAt:           o.CancelledAt,
		DeliveryLatitude:      o.DeliveryLatitude,
		DeliveryLongitude:     o.DeliveryLongitude,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}

	if o.CancelReason != nil {
		orderEntity.CancelReason = *o.CancelReason
	}

	return orderEntity
}
