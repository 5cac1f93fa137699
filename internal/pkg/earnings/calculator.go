package earnings

import (
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

type Config struct {
	BaseFee   float64
	PerKmRate float64

	// Вечернее окно повышенного спроса, включительно по обеим границам.
	EveningStartHour int
	EveningEndHour   int
	EveningBonusRate float64

	VehicleBonus map[entities.CourierVehicleType]float64
}

// DefaultConfig — тарифы по умолчанию: база 15, 2 за километр,
// вечер 18..22 дает 20% от базы, бонусы за транспорт.
func DefaultConfig() Config {
	return Config{
		BaseFee:          15.00,
		PerKmRate:        2.00,
		EveningStartHour: 18,
		EveningEndHour:   22,
		EveningBonusRate: 0.20,
		VehicleBonus: map[entities.CourierVehicleType]float64{
			entities.Bicycle:   0,
			entities.Motorbike: 5.00,
			entities.Car:       10.00,
		},
	}
}

// Calculator считает стоимость доставки для курьера. Функция чистая:
// одинаковые входы дают одинаковый результат, поэтому котировка при
// назначении и строка леджера при доставке не расходятся.
type Calculator struct {
	cfg Config
}

func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Compute возвращает разбивку стоимости доставки заказа курьером на момент now.
// Если координаты вендора или адреса доставки неизвестны, дистанционный бонус
// не начисляется.
func (c *Calculator) Compute(
	order *entities.Order,
	vendor *entities.Vendor,
	courier *entities.Courier,
	tip float64,
	now time.Time,
) entities.FeeBreakdown {
	breakdown := entities.FeeBreakdown{
		BaseFee: c.cfg.BaseFee,
		Tip:     tip,
	}

	if vendor != nil && vendor.HasLocation() && order.HasDeliveryLocation() {
		distanceKm := geo.DistanceKm(
			*vendor.Latitude,
			*vendor.Longitude,
			*order.DeliveryLatitude,
			*order.DeliveryLongitude,
		)
		breakdown.DistanceBonus = distanceKm * c.cfg.PerKmRate
	}

	hour := now.Hour()
	if hour >= c.cfg.EveningStartHour && hour <= c.cfg.EveningEndHour {
		breakdown.TimeBonus = c.cfg.BaseFee * c.cfg.EveningBonusRate
	}

	breakdown.VehicleBonus = c.cfg.VehicleBonus[courier.VehicleType]

	breakdown.Total = breakdown.BaseFee +
		breakdown.DistanceBonus +
		breakdown.TimeBonus +
		breakdown.VehicleBonus +
		breakdown.Tip

	return breakdown
}
