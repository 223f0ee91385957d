package tournee

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/journal"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/scan"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
)

// ScanOutcome результат скана для UI слоя. KnownToServer выставляется когда
// пакет неизвестен локально, но авторитет его знает: вероятно пакет пришел
// после утреннего fetch и водителю стоит обновить список.
type ScanOutcome struct {
	Found         bool
	KnownToServer bool
	Package       *entities.Package
	RoutePosition int
}

// Controller единственный мутатор состояния tournée. Все интенты UI проходят
// через него и сериализуются мьютексом; Store и Resolver внутренних блокировок
// не имеют. Каждая успешная мутация синхронно персистится: упавший процесс
// не теряет ничего, кроме последнего незавершенного интента.
type Controller struct {
	gateway      Gateway
	syncClient   SyncClient
	cacheFactory CacheFactory
	journal      *journal.Journal
	clock        Clock

	mu           stdsync.Mutex
	store        *session.Store
	resolver     *scan.Resolver
	cache        Cache
	creds        entities.Credentials
	optimization *entities.OptimizationData
}

func New(
	gateway Gateway,
	syncClient SyncClient,
	cacheFactory CacheFactory,
	journal *journal.Journal,
	clock Clock,
) *Controller {
	return &Controller{
		gateway:      gateway,
		syncClient:   syncClient,
		cacheFactory: cacheFactory,
		journal:      journal,
		clock:        clock,
	}
}

// Login открывает сессию у авторитета. При недоступности сети стартует из
// персистентного кеша, если там лежит сессия того же водителя: день должен
// начинаться и в мертвой зоне.
func (c *Controller) Login(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, error) {
	cacheStore, err := c.cacheFactory.ForNamespace(creds.Namespace())
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	sess, err := c.gateway.CreateSession(ctx, creds)
	if err != nil {
		if errors.Is(err, syncsvc.ErrRemoteUnavailable) {
			return c.loginOffline(ctx, creds, cacheStore, err)
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	queue, err := cacheStore.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.creds = creds
	c.cache = cacheStore
	c.optimization = nil
	// очередь прошлого запуска не выбрасываем: неподтвержденные сканы обязаны
	// пережить рестарт и уйти следующим flush
	if queue != nil && len(queue.Changes) > 0 {
		c.journal.Restore(*queue)
	} else {
		c.journal.Reset()
	}
	c.store = session.New(sess, c.journal, c.clock)
	c.resolver = scan.New(c.store)
	c.syncClient.Reset(c.clock.Now().Unix())

	if err := c.persistLocked(ctx); err != nil {
		return nil, err
	}
	snapshot := c.store.Snapshot()
	if err := c.cache.UpdatePackages(ctx, snapshot, nil); err != nil {
		return nil, fmt.Errorf("update packages cache: %w", err)
	}
	return snapshot, nil
}

func (c *Controller) loginOffline(ctx context.Context, creds entities.Credentials, cacheStore Cache, cause error) (*entities.DeliverySession, error) {
	cached, err := cacheStore.LoadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cached session: %w", err)
	}
	if cached == nil {
		return nil, fmt.Errorf("offline login without cached session: %w", cause)
	}
	queue, err := cacheStore.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.creds = creds
	c.cache = cacheStore
	c.optimization = nil
	if queue != nil {
		c.journal.Restore(*queue)
	} else {
		c.journal.Reset()
	}
	c.store = session.New(cached, c.journal, c.clock)
	c.resolver = scan.New(c.store)
	c.syncClient.Reset(0)

	return c.store.Snapshot(), nil
}

// Logout завершает день: кеш водителя стирается, очередь и состояние
// сбрасываются. Фоновый flush после этого простаивает до следующего логина.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return ErrNoActiveSession
	}
	if err := c.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	c.store = nil
	c.resolver = nil
	c.cache = nil
	c.creds = entities.Credentials{}
	c.optimization = nil
	c.journal.Reset()
	c.syncClient.Reset(0)
	return nil
}

func (c *Controller) HasSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store != nil
}

func (c *Controller) Snapshot() (*entities.DeliverySession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return nil, ErrNoActiveSession
	}
	return c.store.Snapshot(), nil
}

func (c *Controller) SyncStatus() (entities.SyncState, error) {
	c.mu.Lock()
	hasSession := c.store != nil
	c.mu.Unlock()

	if !hasSession {
		return entities.SyncState{}, ErrNoActiveSession
	}
	return c.syncClient.State(), nil
}

func (c *Controller) LastActivity() time.Time {
	return c.syncClient.LastActivity()
}

// Scan сканирует пакет: локальный резолв, перевод в scanned, синхронный
// персист. При локальном промахе делает best-effort запрос к авторитету,
// офлайн промах остается просто промахом.
func (c *Controller) Scan(ctx context.Context, tracking string) (*ScanOutcome, error) {
	c.mu.Lock()
	if c.store == nil {
		c.mu.Unlock()
		return nil, ErrNoActiveSession
	}

	result, err := c.resolver.Scan(tracking)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if result.Found {
		c.syncClient.NotifyLocalMutation()
		err := c.persistLocked(ctx)
		c.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return &ScanOutcome{
			Found:         true,
			Package:       result.Package,
			RoutePosition: result.RoutePosition,
		}, nil
	}
	sessionID := c.store.SessionID()
	c.mu.Unlock()

	outcome := &ScanOutcome{}
	remote, err := c.gateway.Scan(ctx, sessionID, tracking)
	if err != nil || !remote.Found {
		return outcome, nil
	}
	outcome.KnownToServer = true
	outcome.Package = remote.Package
	if remote.RoutePosition != nil {
		outcome.RoutePosition = *remote.RoutePosition
	}
	return outcome, nil
}

func (c *Controller) MarkDelivered(ctx context.Context, tracking, deliveryProof string) error {
	return c.mutate(ctx, func(store *session.Store) error {
		return store.MarkDelivered(tracking, deliveryProof)
	})
}

func (c *Controller) MarkFailed(ctx context.Context, tracking, reason string) error {
	return c.mutate(ctx, func(store *session.Store) error {
		return store.MarkFailed(tracking, reason)
	})
}

func (c *Controller) Reorder(ctx context.Context, internalID string, newPosition int) error {
	return c.mutate(ctx, func(store *session.Store) error {
		return store.Reorder(internalID, newPosition)
	})
}

func (c *Controller) UpdateAddress(ctx context.Context, addressID, newLabel string, lat, lng float64) error {
	return c.mutate(ctx, func(store *session.Store) error {
		return store.UpdateAddress(addressID, newLabel, lat, lng)
	})
}

// ApplyOptimization применяет порядок обхода от внешнего оптимизатора.
// Порядок серверный, в журнал изменений не попадает.
func (c *Controller) ApplyOptimization(ctx context.Context, orderedIDs []string, totalDistanceKm float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return ErrNoActiveSession
	}
	if err := c.store.ApplyOptimization(orderedIDs); err != nil {
		return err
	}
	c.optimization = &entities.OptimizationData{
		OrderedIDs:      append([]string(nil), orderedIDs...),
		TotalDistanceKm: totalDistanceKm,
		AppliedAt:       c.clock.Now().Unix(),
	}
	if err := c.persistLocked(ctx); err != nil {
		return err
	}
	if err := c.cache.UpdatePackages(ctx, c.store.Snapshot(), c.optimization); err != nil {
		return fmt.Errorf("update packages cache: %w", err)
	}
	return nil
}

// FetchPackages перезабирает список у авторитета, server wins целиком.
// Возвращает число пакетов, добавленных после утреннего fetch.
func (c *Controller) FetchPackages(ctx context.Context) (int, error) {
	c.mu.Lock()
	if c.store == nil {
		c.mu.Unlock()
		return 0, ErrNoActiveSession
	}
	creds := c.creds
	c.mu.Unlock()

	sess, newCount, err := c.gateway.FetchPackages(ctx, creds)
	if err != nil {
		return 0, fmt.Errorf("fetch packages: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return 0, ErrNoActiveSession
	}
	c.store.Replace(sess)
	if err := c.persistLocked(ctx); err != nil {
		return 0, err
	}
	if err := c.cache.UpdatePackages(ctx, c.store.Snapshot(), c.optimization); err != nil {
		return 0, fmt.Errorf("update packages cache: %w", err)
	}
	return newCount, nil
}

// Packages отдает партиционированный кеш пакетов (singles, groups,
// problematic) для списочных экранов. Инвалидированный кеш перестраивается
// из живой сессии на месте.
func (c *Controller) Packages(ctx context.Context) (*entities.PackagesCache, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return nil, ErrNoActiveSession
	}
	snapshot, err := c.cache.LoadPackages(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		return snapshot, nil
	}

	if err := c.cache.UpdatePackages(ctx, c.store.Snapshot(), c.optimization); err != nil {
		return nil, fmt.Errorf("rebuild packages cache: %w", err)
	}
	return c.cache.LoadPackages(ctx)
}

// SyncNow форсирует немедленный flush, не дожидаясь таймера.
func (c *Controller) SyncNow(ctx context.Context) error {
	c.mu.Lock()
	if c.store == nil {
		c.mu.Unlock()
		return ErrNoActiveSession
	}
	sessionID := c.store.SessionID()
	c.mu.Unlock()

	return c.syncClient.Flush(ctx, sessionID)
}

// ApplyServerSession применяет слитую сервером сессию после flush.
// Логаут, случившийся во время in-flight синхронизации, ответ выбрасывает.
func (c *Controller) ApplyServerSession(ctx context.Context, sess *entities.DeliverySession) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return ErrNoActiveSession
	}
	c.store.Replace(sess)
	if err := c.persistLocked(ctx); err != nil {
		return err
	}
	if err := c.cache.UpdatePackages(ctx, c.store.Snapshot(), c.optimization); err != nil {
		return fmt.Errorf("update packages cache: %w", err)
	}
	return nil
}

func (c *Controller) mutate(ctx context.Context, op func(store *session.Store) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return ErrNoActiveSession
	}
	if err := op(c.store); err != nil {
		return err
	}
	c.syncClient.NotifyLocalMutation()
	return c.persistLocked(ctx)
}

// вызывается строго под c.mu
func (c *Controller) persistLocked(ctx context.Context) error {
	if err := c.cache.SaveState(ctx, c.store.Snapshot(), c.journal.Export()); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
