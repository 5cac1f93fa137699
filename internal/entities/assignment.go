package entities

import "time"

// Assignment — претензия одного курьера на один заказ. История назначений
// заказа не удаляется: отклоненные и вытесненные записи деактивируются,
// активной остается максимум одна.
type Assignment struct {
	ID           int64
	OrderID      string
	CourierID    int64
	Status       AssignmentStatusType
	IsActive     bool
	DeliveryFee  float64
	Tip          float64
	RejectReason string
	AssignedAt   time.Time
	AcceptedAt   *time.Time
	RejectedAt   *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AssignmentStatusType string

const (
	AssignmentAssigned       AssignmentStatusType = "assigned"
	AssignmentAccepted       AssignmentStatusType = "accepted"
	AssignmentRejected       AssignmentStatusType = "rejected"
	AssignmentOutForDelivery AssignmentStatusType = "out_for_delivery"
	AssignmentDelivered      AssignmentStatusType = "delivered"
)

func (s AssignmentStatusType) String() string {
	return string(s)
}

type AssignmentModify struct {
	ID           *int64
	OrderID      *string
	CourierID    *int64
	Status       *AssignmentStatusType
	IsActive     *bool
	DeliveryFee  *float64
	Tip          *float64
	RejectReason *string
	AssignedAt   *time.Time
	AcceptedAt   *time.Time
	RejectedAt   *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
}

// BroadcastOffer — предложение заказа курьеру в режиме рассылки.
// В отличие от Assignment не связывает заказ с курьером: связывание
// происходит первым успешным Accept.
type BroadcastOffer struct {
	ID          int64
	OrderID     string
	CourierID   int64
	DeliveryFee float64
	OfferedAt   time.Time
	ExpiresAt   time.Time
}

type BroadcastOfferModify struct {
	OrderID     *string
	CourierID   *int64
	DeliveryFee *float64
	OfferedAt   *time.Time
	ExpiresAt   *time.Time
}
