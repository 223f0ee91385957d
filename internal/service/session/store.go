package session

import (
	"sort"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

// Store канонический in-memory источник правды по одной tournée.
// Мутируется только из одного контекста (tournee controller), внутренних блокировок нет.
type Store struct {
	session  *entities.DeliverySession
	tracking map[string]string // tracking -> internal id, перестраивается при Replace
	journal  Journal
	clock    Clock
}

func New(session *entities.DeliverySession, journal Journal, clock Clock) *Store {
	store := &Store{
		session: session,
		journal: journal,
		clock:   clock,
	}
	store.rebuildIndex()
	store.updateStats()
	return store
}

// Snapshot возвращает глубокую копию сессии для чтения UI слоем.
func (s *Store) Snapshot() *entities.DeliverySession {
	snapshot := &entities.DeliverySession{
		SessionID:   s.session.SessionID,
		Packages:    make(map[string]entities.Package, len(s.session.Packages)),
		Addresses:   make(map[string]entities.Address, len(s.session.Addresses)),
		IsOptimized: s.session.IsOptimized,
		Stats:       s.session.Stats,
	}
	for id, pkg := range s.session.Packages {
		snapshot.Packages[id] = pkg
	}
	for id, addr := range s.session.Addresses {
		addrCopy := addr
		addrCopy.PackageIDs = append([]string(nil), addr.PackageIDs...)
		snapshot.Addresses[id] = addrCopy
	}
	return snapshot
}

func (s *Store) SessionID() string {
	return s.session.SessionID
}

func (s *Store) Stats() entities.SessionStats {
	return s.session.Stats
}

func (s *Store) FindByTracking(tracking string) (*entities.Package, error) {
	if !isValidTracking(tracking) {
		return nil, ErrInvalidTracking
	}

	internalID, ok := s.tracking[tracking]
	if !ok {
		return nil, ErrPackageNotFound
	}
	pkg := s.session.Packages[internalID]
	return &pkg, nil
}

// MarkScanned переводит пакет в scanned и пишет ровно один PackageScanned в журнал.
// Сети не касается: скан обязан работать в подвале без связи.
func (s *Store) MarkScanned(tracking string) error {
	pkg, err := s.findForMutation(tracking)
	if err != nil {
		return err
	}

	pkg.Status = entities.PackageScanned
	pkg.ModifiedByDriver = true
	s.session.Packages[pkg.InternalID] = *pkg
	s.updateStats()

	s.journal.Append(entities.NewPackageScannedChange(tracking, s.clock.Now().Unix(), entities.PackageScanned))
	return nil
}

func (s *Store) MarkDelivered(tracking, deliveryProof string) error {
	pkg, err := s.findForMutation(tracking)
	if err != nil {
		return err
	}

	pkg.Status = entities.PackageDelivered
	pkg.ModifiedByDriver = true
	s.session.Packages[pkg.InternalID] = *pkg
	s.updateStats()

	s.journal.Append(entities.NewPackageDeliveredChange(tracking, s.clock.Now().Unix(), deliveryProof))
	return nil
}

func (s *Store) MarkFailed(tracking, reason string) error {
	pkg, err := s.findForMutation(tracking)
	if err != nil {
		return err
	}

	pkg.Status = entities.PackageFailed
	pkg.ModifiedByDriver = true
	s.session.Packages[pkg.InternalID] = *pkg
	s.updateStats()

	s.journal.Append(entities.NewPackageFailedChange(tracking, s.clock.Now().Unix(), reason))
	return nil
}

// RoutePosition возвращает 0-based позицию пакета в плоской последовательности,
// отсортированной по visit_order. Только для обратной связи водителю.
func (s *Store) RoutePosition(tracking string) (int, error) {
	internalID, ok := s.tracking[tracking]
	if !ok {
		return 0, ErrPackageNotFound
	}

	for position, id := range s.flattenedIDs() {
		if id == internalID {
			return position, nil
		}
	}
	return 0, ErrPackageNotFound
}

// ApplyOptimization применяет порядок от сервиса оптимизации.
// Вход обязан быть перестановкой текущего набора пакетов, иначе ошибка без
// каких-либо частичных изменений: результат, потерявший или задублировавший
// пакет, не должен испортить сессию.
func (s *Store) ApplyOptimization(orderedIDs []string) error {
	if err := s.validatePermutation(orderedIDs); err != nil {
		return err
	}

	s.rebuildFromFlattened(orderedIDs)
	s.session.IsOptimized = true
	return nil
}

// Reorder ручной перенос пакета: удаляем из плоской последовательности,
// вставляем по индексу цели до удаления (каноническая семантика drag&drop).
func (s *Store) Reorder(internalID string, newPosition int) error {
	if newPosition < 0 {
		return ErrInvalidPosition
	}
	if _, ok := s.session.Packages[internalID]; !ok {
		return ErrPackageNotFound
	}

	flat := s.flattenedIDs()
	oldPosition := -1
	for i, id := range flat {
		if id == internalID {
			oldPosition = i
			break
		}
	}
	if oldPosition == -1 {
		return ErrPackageNotFound
	}

	reordered := make([]string, 0, len(flat))
	reordered = append(reordered, flat[:oldPosition]...)
	reordered = append(reordered, flat[oldPosition+1:]...)

	target := newPosition
	if target > len(reordered) {
		target = len(reordered)
	}
	reordered = append(reordered[:target], append([]string{internalID}, reordered[target:]...)...)

	s.rebuildFromFlattened(reordered)
	s.journal.Append(entities.NewOrderChangedChange(internalID, oldPosition, target, s.clock.Now().Unix()))
	return nil
}

func (s *Store) UpdateAddress(addressID, newLabel string, lat, lng float64) error {
	addr, ok := s.session.Addresses[addressID]
	if !ok {
		return ErrAddressNotFound
	}

	addr.Label = newLabel
	addr.Latitude = lat
	addr.Longitude = lng
	addr.CorrectedByDriver = true
	s.session.Addresses[addressID] = addr

	s.journal.Append(entities.NewAddressUpdatedChange(addressID, newLabel, lat, lng, s.clock.Now().Unix()))
	return nil
}

// Replace wholesale замена сессии авторитетным ответом сервера (server wins).
func (s *Store) Replace(session *entities.DeliverySession) {
	s.session = session
	s.rebuildIndex()
	s.updateStats()
}

func (s *Store) findForMutation(tracking string) (*entities.Package, error) {
	if !isValidTracking(tracking) {
		return nil, ErrInvalidTracking
	}
	internalID, ok := s.tracking[tracking]
	if !ok {
		return nil, ErrPackageNotFound
	}
	pkg := s.session.Packages[internalID]
	return &pkg, nil
}

func (s *Store) rebuildIndex() {
	s.tracking = make(map[string]string, len(s.session.Packages))
	for internalID, pkg := range s.session.Packages {
		s.tracking[pkg.Tracking] = internalID
	}
}

func (s *Store) updateStats() {
	s.session.Stats = entities.NewSessionStats(s.session.Packages)
}

func (s *Store) orderedAddresses() []entities.Address {
	addresses := make([]entities.Address, 0, len(s.session.Addresses))
	for _, addr := range s.session.Addresses {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool {
		if addresses[i].VisitOrder != addresses[j].VisitOrder {
			return addresses[i].VisitOrder < addresses[j].VisitOrder
		}
		return addresses[i].AddressID < addresses[j].AddressID
	})
	return addresses
}

func (s *Store) flattenedIDs() []string {
	flat := make([]string, 0, len(s.session.Packages))
	for _, addr := range s.orderedAddresses() {
		flat = append(flat, addr.PackageIDs...)
	}
	return flat
}

func (s *Store) validatePermutation(orderedIDs []string) error {
	if len(orderedIDs) != len(s.session.Packages) {
		return ErrInvalidOrder
	}
	seen := make(map[string]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := s.session.Packages[id]; !ok {
			return ErrInvalidOrder
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidOrder
		}
		seen[id] = struct{}{}
	}
	return nil
}

// rebuildFromFlattened пересобирает visit_order и package_ids из плоской
// последовательности id. Порядок адресов определяется первым вхождением пакета
// адреса; visit_order после пересборки плотный, с нуля.
func (s *Store) rebuildFromFlattened(flat []string) {
	ownerOf := make(map[string]string, len(s.session.Packages))
	for _, addr := range s.session.Addresses {
		for _, packageID := range addr.PackageIDs {
			ownerOf[packageID] = addr.AddressID
		}
	}

	grouped := make(map[string][]string, len(s.session.Addresses))
	addressOrder := make([]string, 0, len(s.session.Addresses))
	for _, packageID := range flat {
		addressID := ownerOf[packageID]
		if _, ok := grouped[addressID]; !ok {
			addressOrder = append(addressOrder, addressID)
		}
		grouped[addressID] = append(grouped[addressID], packageID)
	}

	// адреса без пакетов сохраняют относительный порядок в хвосте
	for _, addr := range s.orderedAddresses() {
		if _, ok := grouped[addr.AddressID]; !ok {
			addressOrder = append(addressOrder, addr.AddressID)
			grouped[addr.AddressID] = addr.PackageIDs
		}
	}

	for position, addressID := range addressOrder {
		addr := s.session.Addresses[addressID]
		addr.VisitOrder = position
		addr.PackageIDs = grouped[addressID]
		s.session.Addresses[addressID] = addr
	}
}
