//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_auto_assign_post_test
package dispatch_auto_assign_post

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
	AutoAssign(ctx context.Context, orderID string) (*entities.Assignment, error)
}
