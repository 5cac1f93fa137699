package courier

import "time"

type CourierDB struct {
	ID                  int64
	UserID              string
	Name                string
	Phone               string
	IsActive            bool
	Status              string
	VehicleType         string
	CurrentActiveOrders int
	MaxActiveOrders     int
	Latitude            *float64
	Longitude           *float64
	LastLocationUpdate  *time.Time
	AverageRating       float64
	TotalDeliveries     int64
	TotalEarnings       float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CourierModifyDB struct {
	ID                 *int64
	UserID             *string
	Name               *string
	Phone              *string
	IsActive           *bool
	Status             *string
	VehicleType        *string
	MaxActiveOrders    *int
	Latitude           *float64
	Longitude          *float64
	LastLocationUpdate *time.Time
}
