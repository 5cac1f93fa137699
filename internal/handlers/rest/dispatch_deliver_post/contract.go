//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_deliver_post_test
package dispatch_deliver_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Deliver(ctx context.Context, orderID string, courierID int64, tip float64) (*entities.Earning, error)
}
