//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"database/sql"
	"net/http"

	trmsql "github.com/avito-tech/go-transaction-manager/sql"
	"github.com/google/wire"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

// InitializeApplication для клиентского демона (cmd/driver-client)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	db *sql.DB,
	getter *trmsql.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStorage,
		provideClock,
		provideJournal,

		provideGateway,
		provideSyncClient,
		provideCacheFactory,
		provideController,

		provideSyncFlushTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(Controller), new(*tournee.Controller)),
	)
	return &Application{}, nil
}
