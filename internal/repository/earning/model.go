package earning

import "time"

type EarningDB struct {
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
