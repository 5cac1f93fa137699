package selector

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

// distanceTieKm — курьеры ближе друг к другу, чем на это значение,
// считаются равноудаленными и сравниваются по рейтингу.
const distanceTieKm = 0.1

type Config struct {
	AutoAssignRadiusKm float64
	LocationStaleness  time.Duration
}

// Selector подбирает курьеров для заказа: фильтрует доступных по
// радиусу от точки вендора и ранжирует по близости.
type Selector struct {
	couriers CourierPool
	vendors  VendorProvider
	clock    Clock
	cfg      Config
}

func New(couriers CourierPool, vendors VendorProvider, clock Clock, cfg Config) *Selector {
	return &Selector{
		couriers: couriers,
		vendors:  vendors,
		clock:    clock,
		cfg:      cfg,
	}
}

// BestMatch возвращает ближайшего подходящего курьера для заказа
// в пределах радиуса автоназначения.
func (s *Selector) BestMatch(ctx context.Context, order *entities.Order) (*entities.RankedCourier, error) {
	ranked, err := s.RankWithinRadius(ctx, order, s.cfg.AutoAssignRadiusKm)
	if err != nil {
		return nil, err
	}

	if len(ranked) == 0 {
		return nil, ErrNoAvailableCouriers
	}

	return &ranked[0], nil
}

// RankWithinRadius возвращает доступных курьеров в радиусе radiusKm от
// вендора заказа, отсортированных от ближнего к дальнему. При почти
// равной дистанции выше встает курьер с большим рейтингом.
func (s *Selector) RankWithinRadius(ctx context.Context, order *entities.Order, radiusKm float64) ([]entities.RankedCourier, error) {
	vendor, err := s.vendors.GetByID(ctx, order.VendorID)
	if err != nil {
		return nil, fmt.Errorf("get vendor %q: %w", order.VendorID, err)
	}

	if !vendor.HasLocation() {
		return nil, ErrVendorLocationMissing
	}

	locationSince := s.clock.Now().Add(-s.cfg.LocationStaleness)

	pool, err := s.couriers.FindAvailable(ctx, locationSince)
	if err != nil {
		return nil, fmt.Errorf("find available couriers: %w", err)
	}

	ranked := make([]entities.RankedCourier, 0, len(pool))

	for _, courier := range pool {
		if !courier.HasLocation() {
			continue
		}

		distance := geo.DistanceKm(*vendor.Latitude, *vendor.Longitude, *courier.Latitude, *courier.Longitude)
		if distance > radiusKm {
			continue
		}

		ranked = append(ranked, entities.RankedCourier{
			Courier:    courier,
			DistanceKm: distance,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if math.Abs(ranked[i].DistanceKm-ranked[j].DistanceKm) > distanceTieKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}

		if ranked[i].Courier.AverageRating != ranked[j].Courier.AverageRating {
			return ranked[i].Courier.AverageRating > ranked[j].Courier.AverageRating
		}

		return ranked[i].Courier.ID < ranked[j].Courier.ID
	})

	return ranked, nil
}
