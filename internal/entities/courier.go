package entities

import (
	"time"
)

type Courier struct {
	ID                  int64
	UserID              string
	Name                string
	Phone               string
	IsActive            bool
	Status              CourierStatusType
	VehicleType         CourierVehicleType
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

type CourierVehicleType string

const (
	Bicycle   CourierVehicleType = "bicycle"
	Motorbike CourierVehicleType = "motorbike"
	Car       CourierVehicleType = "car"
)

const DefaultVehicleType = Bicycle

func (t CourierVehicleType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierOffline   CourierStatusType = "offline"
	CourierAvailable CourierStatusType = "available"
	// CourierAssigned — транзитное состояние: назначение создано,
	// но курьер еще не принял и не отклонил его.
	CourierAssigned CourierStatusType = "assigned"
	CourierBusy     CourierStatusType = "busy"
)

const DefaultStatusType = CourierOffline

func (t CourierStatusType) String() string {
	return string(t)
}

// StatusForActiveOrders выводит статус курьера из числа активных заказов.
func StatusForActiveOrders(activeOrders int) CourierStatusType {
	if activeOrders > 0 {
		return CourierBusy
	}
	return CourierAvailable
}

// HasLocation сообщает, известна ли последняя позиция курьера.
func (c *Courier) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// HasCapacity сообщает, может ли курьер взять еще один заказ.
func (c *Courier) HasCapacity() bool {
	return c.CurrentActiveOrders < c.MaxActiveOrders
}

type CourierModify struct {
	ID                 *int64
	UserID             *string
	Name               *string
	Phone              *string
	IsActive           *bool
	Status             *CourierStatusType
	VehicleType        *CourierVehicleType
	MaxActiveOrders    *int
	Latitude           *float64
	Longitude          *float64
	LastLocationUpdate *time.Time
}

// RankedCourier — кандидат на назначение вместе с дистанцией до вендора.
type RankedCourier struct {
	Courier    Courier
	DistanceKm float64
}
