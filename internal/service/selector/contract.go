//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=selector_test
package selector

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type CourierPool interface {
	// FindAvailable возвращает активных курьеров со статусом available,
	// свободной емкостью и позицией, обновленной не раньше locationSince.
	FindAvailable(ctx context.Context, locationSince time.Time) ([]entities.Courier, error)
}

type VendorProvider interface {
	GetByID(ctx context.Context, vendorID string) (*entities.Vendor, error)
}

type Clock interface {
	Now() time.Time
}
