//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

type Journal interface {
	Append(change entities.Change)
}

type Clock interface {
	Now() time.Time
}
