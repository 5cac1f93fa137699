//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_broadcast_post_test
package dispatch_broadcast_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Broadcast(ctx context.Context, orderID string, radiusKm float64) (int, error)
}
