package assignment

import "time"

type AssignmentDB struct {
	ID           int64
	OrderID      string
	CourierID    int64
	Status       string
	IsActive     bool
	DeliveryFee  float64
	Tip          float64
	RejectReason *string
	AssignedAt   time.Time
	AcceptedAt   *time.Time
	RejectedAt   *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AssignmentModifyDB struct {
	OrderID      *string
	CourierID    *int64
	Status       *string
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

type BroadcastOfferDB struct {
	ID          int64
	OrderID     string
	CourierID   int64
	DeliveryFee float64
	OfferedAt   time.Time
	ExpiresAt   time.Time
}
