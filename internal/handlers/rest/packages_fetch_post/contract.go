//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_fetch_post_test
package packages_fetch_post

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
	FetchPackages(ctx context.Context) (int, error)
}
