//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tournee_test
package tournee

import (
	"context"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

type Gateway interface {
	CreateSession(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, error)
	FetchPackages(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, int, error)
	Scan(ctx context.Context, sessionID, tracking string) (*entities.RemoteScan, error)
}

type SyncClient interface {
	State() entities.SyncState
	NotifyLocalMutation()
	LastActivity() time.Time
	Reset(lastSync int64)
	Flush(ctx context.Context, sessionID string) error
}

type Cache interface {
	SaveState(ctx context.Context, session *entities.DeliverySession, queue entities.PendingChangesQueue) error
	LoadSession(ctx context.Context) (*entities.DeliverySession, error)
	LoadQueue(ctx context.Context) (*entities.PendingChangesQueue, error)
	UpdatePackages(ctx context.Context, session *entities.DeliverySession, optimization *entities.OptimizationData) error
	LoadPackages(ctx context.Context) (*entities.PackagesCache, error)
	Invalidate(ctx context.Context) error
}

// CacheFactory отдает Cache под namespace конкретного водителя, известный
// только в момент логина.
type CacheFactory interface {
	ForNamespace(namespace string) (Cache, error)
}

type Clock interface {
	Now() time.Time
}
