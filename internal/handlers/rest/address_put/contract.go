//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_put_test
package address_put

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
	UpdateAddress(ctx context.Context, addressID, newLabel string, lat, lng float64) error
}
