package sync

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

// Client машина состояний синхронизации:
//
//	Synced → Pending{n} → Syncing → {Synced | Offline{last_error, n} | Error{message}}
//
// Любая локальная мутация двигает Synced в Pending; сбой сети сохраняет очередь
// и уходит в Offline; авторитетный отказ уходит в Error, тоже сохраняя очередь.
// Flush поверх Syncing пропускается, а не ставится в очередь: дублирующих
// in-flight запросов быть не должно.
type Client struct {
	gateway Gateway
	journal Journal
	applier Applier
	clock   Clock

	mu           stdsync.Mutex
	state        entities.SyncState
	lastActivity time.Time
}

func New(gateway Gateway, journal Journal, clock Clock) *Client {
	return &Client{
		gateway: gateway,
		journal: journal,
		clock:   clock,
		state: entities.SyncState{
			Status: entities.SyncSynced,
		},
	}
}

// SetApplier разрывает цикл зависимостей при сборке: контроллер владеет
// клиентом и одновременно применяет серверные сессии. Обязан быть вызван
// до первого Flush.
func (c *Client) SetApplier(applier Applier) {
	c.applier = applier
}

func (c *Client) State() entities.SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// NotifyLocalMutation вызывается после каждого локального интента: двигает
// Synced в Pending и отмечает активность для адаптивного интервала таймера.
func (c *Client) NotifyLocalMutation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastActivity = c.clock.Now()
	pending := c.journal.Len()
	if c.state.Status == entities.SyncSynced || c.state.Status == entities.SyncPending {
		c.state.Status = entities.SyncPending
		c.state.PendingCount = pending
		return
	}
	// в Syncing/Offline/Error статус не трогаем, но счетчик держим честным
	c.state.PendingCount = pending
}

func (c *Client) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastActivity
}

// Reset приводит машину к состоянию свежего логина или восстановленной сессии.
func (c *Client) Reset(lastSync int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.journal.Len()
	c.state = entities.SyncState{
		Status:   entities.SyncSynced,
		LastSync: lastSync,
	}
	if pending > 0 {
		c.state.Status = entities.SyncPending
		c.state.PendingCount = pending
	}
}

// Flush один цикл синхронизации. Снимает снапшот очереди, зовет сеть без
// удержания блокировок (локальные интенты продолжают приниматься), применяет
// ответ server-wins и срезает только подтвержденный префикс очереди.
func (c *Client) Flush(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	if c.state.Status == entities.SyncSyncing {
		c.mu.Unlock()
		SyncFlushesTotal.WithLabelValues("skipped").Inc()
		return ErrSyncInFlight
	}
	lastSync := c.state.LastSync
	c.state.Status = entities.SyncSyncing
	c.mu.Unlock()

	changes := c.journal.Snapshot()

	result, err := c.gateway.Sync(ctx, sessionID, lastSync, changes)
	if err != nil {
		return c.fail(err)
	}

	applied := result.ChangesApplied
	if applied > len(changes) {
		applied = len(changes)
	}
	remaining := c.journal.ConsumeApplied(applied)

	if err := c.applier.ApplyServerSession(ctx, result.Session); err != nil {
		return c.fail(fmt.Errorf("apply server session: %w", err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = entities.SyncState{
		Status:   entities.SyncSynced,
		LastSync: c.clock.Now().Unix(),
	}
	if remaining > 0 {
		c.state.Status = entities.SyncPending
		c.state.PendingCount = remaining
	}

	SyncFlushesTotal.WithLabelValues("ok").Inc()
	return nil
}

func (c *Client) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.journal.Len()

	var rejection *RejectionError
	if errors.As(err, &rejection) {
		c.state = entities.SyncState{
			Status:       entities.SyncError,
			Message:      rejection.Message,
			PendingCount: pending,
			LastSync:     c.state.LastSync,
		}
		SyncFlushesTotal.WithLabelValues("rejected").Inc()
		return err
	}

	// все прочее считаем сетевым сбоем: таймаут, обрыв, отмена контекста
	c.journal.IncrementRetry()
	c.state = entities.SyncState{
		Status:       entities.SyncOffline,
		LastError:    err.Error(),
		PendingCount: pending,
		LastSync:     c.state.LastSync,
	}
	SyncFlushesTotal.WithLabelValues("offline").Inc()
	return err
}
