package entities

import "time"

// Vendor — точка выдачи заказа. Здесь используется только для координат
// и уведомлений владельцу, управление вендорами живет в другом сервисе.
type Vendor struct {
	ID        string
	OwnerID   string
	Name      string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

func (v *Vendor) HasLocation() bool {
	return v.Latitude != nil && v.Longitude != nil
}
