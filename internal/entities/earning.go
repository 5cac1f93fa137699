package entities

import "time"

// Earning — строка леджера заработка курьера, создается ровно один раз
// на доставленный заказ.
type Earning struct {
	ID            int64
	CourierID     int64
	OrderID       string
	BaseFee       float64
	DistanceBonus float64
	Tip           float64
	Total         float64
	IsPaid        bool
	EarnedAt      time.Time
	PaidAt        *time.Time
}

type EarningModify struct {
	CourierID     *int64
	OrderID       *string
	BaseFee       *float64
	DistanceBonus *float64
	Tip           *float64
	Total         *float64
	EarnedAt      *time.Time
}

// FeeBreakdown — результат расчета стоимости доставки. Одна и та же
// формула применяется при назначении (котировка) и при доставке (леджер),
// чтобы котировка и выплата не расходились.
type FeeBreakdown struct {
	BaseFee       float64
	DistanceBonus float64
	TimeBonus     float64
	VehicleBonus  float64
	Tip           float64
	Total         float64
}
