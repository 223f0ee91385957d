//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=scan_test
package scan

import (
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

type Store interface {
	FindByTracking(tracking string) (*entities.Package, error)
	RoutePosition(tracking string) (int, error)
	MarkScanned(tracking string) error
}
