package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	trmsql "github.com/avito-tech/go-transaction-manager/sql"
	"github.com/google/uuid"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/gateway/http/routeapi"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/address_put"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/login_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/logout_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/optimization_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/package_delivered_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/package_failed_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/packages_fetch_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/packages_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/reorder_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/scan_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/session_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/status_get"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/rest/sync_post"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/handlers/tasks/sync_flush"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/clock"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
	sqliteRepo "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/repository/sqlite"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/cache"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/journal"
	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/background"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/querier"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/tx"
)

type Application struct {
	Controller        Controller
	BackgroundWorkers *background.Worker
}

// Controller собирает контракты всех REST хендлеров и фоновой задачи:
// единственная реализация это tournee.Controller.
type Controller interface {
	login_post.Service
	logout_post.Service
	session_get.Service
	status_get.Service
	scan_post.Service
	reorder_post.Service
	address_put.Service
	package_delivered_post.Service
	package_failed_post.Service
	optimization_post.Service
	packages_get.Service
	packages_fetch_post.Service
	sync_post.Service
	sync_flush.Service
}

// cacheFactory создает Cache Manager под namespace водителя в момент логина.
type cacheFactory struct {
	storage   cache.Storage
	txManager cache.TxManager
	clock     cache.Clock
	ttl       time.Duration
}

func (f *cacheFactory) ForNamespace(namespace string) (tournee.Cache, error) {
	manager, err := cache.New(f.storage, f.txManager, f.clock, f.ttl, namespace)
	if err != nil {
		return nil, err
	}
	return manager, nil
}

func provideTxManager(db *sql.DB) *tx.Manager {
	return tx.New(db)
}

func provideQuerier(db *sql.DB, getter *trmsql.CtxGetter) *querier.Querier {
	return querier.New(db, getter)
}

func provideStorage(querier *querier.Querier) *sqliteRepo.Storage {
	return sqliteRepo.New(querier)
}

func provideClock() clock.System {
	return clock.System{}
}

func provideJournal() *journal.Journal {
	return journal.New()
}

func provideGateway(client *http.Client, cfg *config.Config) *routeapi.Gateway {
	return routeapi.New(client, cfg.RouteAPI.BaseURL, uuid.NewString())
}

func provideSyncClient(gateway *routeapi.Gateway, journal *journal.Journal, clk clock.System) *syncsvc.Client {
	return syncsvc.New(gateway, journal, clk)
}

func provideCacheFactory(storage *sqliteRepo.Storage, txManager *tx.Manager, clk clock.System, cfg *config.Config) *cacheFactory {
	return &cacheFactory{
		storage:   storage,
		txManager: txManager,
		clock:     clk,
		ttl:       cfg.Storage.CacheTTL,
	}
}

func provideController(
	gateway *routeapi.Gateway,
	syncClient *syncsvc.Client,
	factory *cacheFactory,
	journal *journal.Journal,
	clk clock.System,
) *tournee.Controller {
	controller := tournee.New(gateway, syncClient, factory, journal, clk)
	syncClient.SetApplier(controller)
	return controller
}

func provideSyncFlushTask(log logger.Logger, controller *tournee.Controller, clk clock.System, cfg *config.Config) *sync_flush.SyncFlush {
	return sync_flush.NewSyncFlush(
		log,
		controller,
		clk,
		cfg.Sync.IdleInterval,
		cfg.Sync.ActiveInterval,
		cfg.Sync.ActivityWindow,
	)
}

func provideTaskList(syncFlush *sync_flush.SyncFlush) []background.Task {
	return []background.Task{syncFlush}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
