package entities

import "time"

type Order struct {
	ID                    string
	ShortCode             string
	VendorID              string
	CustomerID            string
	TotalAmount           float64
	Status                OrderStatusType
	CancelReason          string
	CancelledAt           *time.Time
	DeliveryLatitude      *float64
	DeliveryLongitude     *float64
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderPreparing      OrderStatusType = "preparing"
	OrderReady          OrderStatusType = "ready"
	OrderAssigned       OrderStatusType = "assigned"
	OrderAccepted       OrderStatusType = "accepted"
	OrderOutForDelivery OrderStatusType = "out_for_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// CanTransitionTo описывает полный граф переходов статусов заказа.
// Отмена запрещена после выхода курьера на доставку.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	switch s {
	case OrderPending:
		return next == OrderPreparing || next == OrderCancelled
	case OrderPreparing:
		return next == OrderReady || next == OrderCancelled
	case OrderReady:
		return next == OrderAssigned || next == OrderCancelled
	case OrderAssigned:
		return next == OrderAccepted || next == OrderCancelled
	case OrderAccepted:
		return next == OrderOutForDelivery || next == OrderCancelled
	case OrderOutForDelivery:
		return next == OrderDelivered
	case OrderDelivered, OrderCancelled:
		return false
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// HasDeliveryLocation сообщает, известны ли координаты точки доставки
// (нужны для расчета дистанционного бонуса курьера).
func (o *Order) HasDeliveryLocation() bool {
	return o.DeliveryLatitude != nil && o.DeliveryLongitude != nil
}

type OrderModify struct {
	ID           *string
	Status       *OrderStatusType
	CancelReason *string
	CancelledAt  *time.Time
}
