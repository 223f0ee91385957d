package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/repository"
)

// CacheVersion поднимается при каждом изменении схемы снапшота, старые кеши
// при этом инвалидируются атомарно, частичных миграций нет.
const CacheVersion = 3

const DefaultTTL = 24 * time.Hour

const (
	keySession  = "session"
	keyQueue    = "queue"
	keyPackages = "packages"
)

// Manager персистентный слой одной tournée: снапшот сессии, очередь изменений
// и кеш пакетов под общим namespace (societe:matricule). Валидация кеша
// выполняется на каждом чтении, не только на записи; провал гейта стирает
// только отбракованную запись. Сессия и очередь живут независимо от кеша
// пакетов: неподтвержденные сканы обязаны переживать его протухание.
type Manager struct {
	storage   Storage
	txManager TxManager
	clock     Clock
	ttl       time.Duration
	namespace string
}

func New(storage Storage, txManager TxManager, clock Clock, ttl time.Duration, namespace string) (*Manager, error) {
	if namespace == "" {
		return nil, ErrNamespaceRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		storage:   storage,
		txManager: txManager,
		clock:     clock,
		ttl:       ttl,
		namespace: namespace,
	}, nil
}

// SaveState синхронно и атомарно персистит сессию вместе с очередью изменений.
// Вызывается после каждого интента: упавшее приложение не должно терять сканы.
func (m *Manager) SaveState(ctx context.Context, session *entities.DeliverySession, queue entities.PendingChangesQueue) error {
	sessionRaw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	queueRaw, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("marshal queue: %w", err)
	}

	err = m.txManager.Do(ctx, func(ctx context.Context) error {
		if err := m.storage.Set(ctx, m.key(keySession), sessionRaw); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		if err := m.storage.Set(ctx, m.key(keyQueue), queueRaw); err != nil {
			return fmt.Errorf("persist queue: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (m *Manager) LoadSession(ctx context.Context) (*entities.DeliverySession, error) {
	raw, err := m.storage.Get(ctx, m.key(keySession))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session entities.DeliverySession
	if err := json.Unmarshal(raw, &session); err != nil {
		// битый снапшот лечим как отсутствующий
		m.invalidate(ctx, m.key(keySession), reasonCorrupt)
		return nil, nil
	}
	return &session, nil
}

func (m *Manager) LoadQueue(ctx context.Context) (*entities.PendingChangesQueue, error) {
	raw, err := m.storage.Get(ctx, m.key(keyQueue))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load queue: %w", err)
	}

	var queue entities.PendingChangesQueue
	if err := json.Unmarshal(raw, &queue); err != nil {
		m.invalidate(ctx, m.key(keyQueue), reasonCorrupt)
		return nil, nil
	}
	return &queue, nil
}

// UpdatePackages перезаписывает кеш пакетов целиком: партиции и checksum
// пересчитываются на каждом обновлении, timestamp и version всегда свежие.
func (m *Manager) UpdatePackages(ctx context.Context, session *entities.DeliverySession, optimization *entities.OptimizationData) error {
	snapshot := buildSnapshot(session, optimization, m.clock.Now().Unix())

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal packages cache: %w", err)
	}
	if err := m.storage.Set(ctx, m.key(keyPackages), raw); err != nil {
		return fmt.Errorf("persist packages cache: %w", err)
	}
	return nil
}

// LoadPackages читает кеш через валидационный гейт:
//  1. version >= CacheVersion
//  2. возраст <= TTL
//  3. пересчитанный checksum совпадает с сохраненным
//
// Любой провал стирает запись кеша и возвращает nil: вызывающий уходит на
// remote fetch. Сессия и очередь при этом не трогаются.
func (m *Manager) LoadPackages(ctx context.Context) (*entities.PackagesCache, error) {
	raw, err := m.storage.Get(ctx, m.key(keyPackages))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			CacheLoadsTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("load packages cache: %w", err)
	}

	var snapshot entities.PackagesCache
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		m.invalidate(ctx, m.key(keyPackages), reasonCorrupt)
		return nil, nil
	}

	if reason, valid := m.isValid(&snapshot); !valid {
		m.invalidate(ctx, m.key(keyPackages), reason)
		return nil, nil
	}

	CacheLoadsTotal.WithLabelValues("hit").Inc()
	return &snapshot, nil
}

// Invalidate стирает все данные namespace (logout, явная инвалидация).
func (m *Manager) Invalidate(ctx context.Context) error {
	CacheInvalidationsTotal.WithLabelValues(reasonExplicit).Inc()
	if err := m.storage.RemovePrefix(ctx, m.namespace+":"); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	return nil
}

func (m *Manager) isValid(snapshot *entities.PackagesCache) (string, bool) {
	if snapshot.Version < CacheVersion {
		return reasonVersion, false
	}

	age := m.clock.Now().Unix() - snapshot.Timestamp
	if age < 0 || age > int64(m.ttl/time.Second) {
		return reasonExpired, false
	}

	if Checksum(snapshot.Packages) != snapshot.Checksum {
		return reasonChecksum, false
	}
	return "", true
}

func (m *Manager) invalidate(ctx context.Context, key, reason string) {
	CacheInvalidationsTotal.WithLabelValues(reason).Inc()
	CacheLoadsTotal.WithLabelValues("invalid").Inc()
	// best effort: провал удаления не фатален, гейт снова отбросит кеш при чтении
	_ = m.storage.Remove(ctx, key)
}

func (m *Manager) key(suffix string) string {
	return m.namespace + ":" + suffix
}

func buildSnapshot(session *entities.DeliverySession, optimization *entities.OptimizationData, now int64) *entities.PackagesCache {
	packages := make([]entities.Package, 0, len(session.Packages))
	for _, pkg := range session.Packages {
		packages = append(packages, pkg)
	}

	snapshot := &entities.PackagesCache{
		Version:          CacheVersion,
		Packages:         packages,
		Singles:          []entities.Package{},
		Groups:           make(map[string][]entities.Package),
		Problematic:      []entities.Package{},
		Timestamp:        now,
		Checksum:         Checksum(packages),
		OptimizationData: optimization,
	}

	for _, addr := range session.Addresses {
		for _, packageID := range addr.PackageIDs {
			pkg, ok := session.Packages[packageID]
			if !ok {
				continue
			}
			switch {
			case pkg.IsProblematic:
				snapshot.Problematic = append(snapshot.Problematic, pkg)
			case len(addr.PackageIDs) > 1:
				snapshot.Groups[addr.AddressID] = append(snapshot.Groups[addr.AddressID], pkg)
			default:
				snapshot.Singles = append(snapshot.Singles, pkg)
			}
		}
	}

	return snapshot
}
