package order

import "time"

type OrderDB struct {
	ID                    string
	ShortCode             string
	VendorID              string
	CustomerID            string
	TotalAmount           float64
	Status                string
	CancelReason          *string
	CancelledAt           *time.Time
	DeliveryLatitude      *float64
	DeliveryLongitude     *float64
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
