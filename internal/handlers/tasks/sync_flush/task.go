package sync_flush

import (
	"context"
	"errors"
	"time"

	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type Service interface {
	HasSession() bool
	LastActivity() time.Time
	SyncNow(ctx context.Context) error
}

type Clock interface {
	Now() time.Time
}

// SyncFlush периодический фоновый flush очереди изменений. Интервал
// адаптивный: пока водитель активно сканирует, синхронизируемся чаще.
type SyncFlush struct {
	log            logger.Logger
	service        Service
	clock          Clock
	idleInterval   time.Duration
	activeInterval time.Duration
	activityWindow time.Duration
}

func NewSyncFlush(
	log logger.Logger,
	service Service,
	clock Clock,
	idleInterval time.Duration,
	activeInterval time.Duration,
	activityWindow time.Duration,
) *SyncFlush {
	return &SyncFlush{
		log:            log,
		service:        service,
		clock:          clock,
		idleInterval:   idleInterval,
		activeInterval: activeInterval,
		activityWindow: activityWindow,
	}
}

// TTL перечитывается воркером после каждого срабатывания.
func (s *SyncFlush) TTL() time.Duration {
	if s.clock.Now().Sub(s.service.LastActivity()) <= s.activityWindow {
		return s.activeInterval
	}
	return s.idleInterval
}

// Do никогда не возвращает ошибку синхронизации наверх: офлайн и отказы
// сервера это штатные состояния машины, а не сбои задачи. Жесткая ошибка
// здесь валила бы прогрев воркера при старте без сети.
func (s *SyncFlush) Do(ctx context.Context) error {
	if !s.service.HasSession() {
		return nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.idleInterval)
	defer cancel()

	err := s.service.SyncNow(ctxWithTimeout)
	switch {
	case err == nil:
	case errors.Is(err, syncsvc.ErrSyncInFlight):
	case errors.Is(err, tournee.ErrNoActiveSession):
		// логаут между HasSession и flush
	case errors.Is(err, syncsvc.ErrRemoteUnavailable):
		s.log.With(
			logger.NewField("error", err),
		).Info("sync flush deferred, remote unavailable")
	default:
		s.log.With(
			logger.NewField("error", err),
		).Error("sync flush rejected")
	}
	return nil
}

func (s *SyncFlush) Info() string {
	return "sync flush"
}
