//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_failed_post_test
package package_failed_post

import (
	"context"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkFailed(ctx context.Context, tracking, reason string) error
}
