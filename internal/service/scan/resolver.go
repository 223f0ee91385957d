package scan

import (
	"errors"
	"fmt"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
)

// Result типизированный исход скана. NotFound это не ошибка: решает о
// пользовательском сообщении вызывающий.
type Result struct {
	Found         bool
	Package       *entities.Package
	RoutePosition int
}

// Resolver локальный путь самой частой операции. Сканы происходят на рампах и
// в подвалах, поэтому сюда нельзя добавлять сетевые вызовы: lookup, позиция в
// маршруте и перевод в scanned выполняются только на локальном состоянии.
type Resolver struct {
	store Store
}

func New(store Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

func (r *Resolver) Scan(tracking string) (*Result, error) {
	pkg, err := r.store.FindByTracking(tracking)
	if err != nil {
		if errors.Is(err, session.ErrPackageNotFound) {
			return &Result{Found: false}, nil
		}
		return nil, fmt.Errorf("scan lookup: %w", err)
	}

	position, err := r.store.RoutePosition(tracking)
	if err != nil {
		return nil, fmt.Errorf("scan route position: %w", err)
	}

	if err := r.store.MarkScanned(tracking); err != nil {
		return nil, fmt.Errorf("scan mark: %w", err)
	}

	scanned := *pkg
	scanned.Status = entities.PackageScanned
	scanned.ModifiedByDriver = true

	return &Result{
		Found:         true,
		Package:       &scanned,
		RoutePosition: position,
	}, nil
}
