//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_get_test
package packages_get

import (
	"context"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Packages(ctx context.Context) (*entities.PackagesCache, error)
}
