//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_reject_post_test
package dispatch_reject_post

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
	Reject(ctx context.Context, orderID string, courierID int64, reason string) (*entities.Assignment, error)
}
