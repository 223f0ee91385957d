// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"database/sql"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
	sql2 "github.com/avito-tech/go-transaction-manager/sql"
	"net/http"
)

// Injectors from wire.go:

// InitializeApplication для клиентского демона (cmd/driver-client)
func InitializeApplication(ctx context.Context, log logger.Logger, db *sql.DB, getter *sql2.CtxGetter, httpClient *http.Client, cfg *config.Config) (*Application, error) {
	gateway := provideGateway(httpClient, cfg)
	journal := provideJournal()
	system := provideClock()
	client := provideSyncClient(gateway, journal, system)
	querier := provideQuerier(db, getter)
	storage := provideStorage(querier)
	manager := provideTxManager(db)
	appCacheFactory := provideCacheFactory(storage, manager, system, cfg)
	controller := provideController(gateway, client, appCacheFactory, journal, system)
	syncFlush := provideSyncFlushTask(log, controller, system, cfg)
	v := provideTaskList(syncFlush)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		Controller:        controller,
		BackgroundWorkers: worker,
	}
	return application, nil
}
