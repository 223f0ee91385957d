//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_test
package sync

import (
	"context"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

type Gateway interface {
	Sync(ctx context.Context, sessionID string, lastSync int64, changes []entities.Change) (*entities.SyncResult, error)
}

type Journal interface {
	Len() int
	Snapshot() []entities.Change
	ConsumeApplied(applied int) int
	IncrementRetry()
}

// Applier применяет авторитетную сессию к локальному состоянию и синхронно
// его персистит. Реализуется контроллером tournée.
type Applier interface {
	ApplyServerSession(ctx context.Context, session *entities.DeliverySession) error
}

type Clock interface {
	Now() time.Time
}
