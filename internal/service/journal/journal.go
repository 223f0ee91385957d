package journal

import (
	"sync"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
)

// Journal append-only очередь локальных мутаций, еще не подтвержденных сервером.
// Изменения иммутабельны; целиком очередь очищается только после подтвержденной
// синхронизации, при частичном подтверждении срезается только примененный префикс.
// Мьютекс нужен единственному пересечению контекстов: фоновый flush снимает
// снапшот, пока event loop продолжает принимать интенты.
type Journal struct {
	mu         sync.Mutex
	changes    []entities.Change
	retryCount int
}

func New() *Journal {
	return &Journal{}
}

func (j *Journal) Append(change entities.Change) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.changes = append(j.changes, change)
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.changes)
}

// Snapshot копия очереди для in-flight синхронизации: append во время сетевого
// вызова не должен менять уже отправленный список.
func (j *Journal) Snapshot() []entities.Change {
	j.mu.Lock()
	defer j.mu.Unlock()

	return append([]entities.Change(nil), j.changes...)
}

// ConsumeApplied удаляет подтвержденный сервером префикс и возвращает размер
// остатка. applied за пределами очереди означает "подтверждено все".
func (j *Journal) ConsumeApplied(applied int) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	if applied <= 0 {
		return len(j.changes)
	}
	if applied >= len(j.changes) {
		j.changes = nil
		j.retryCount = 0
		return 0
	}
	j.changes = append([]entities.Change(nil), j.changes[applied:]...)
	return len(j.changes)
}

func (j *Journal) RetryCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.retryCount
}

func (j *Journal) IncrementRetry() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.retryCount++
}

func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.changes = nil
	j.retryCount = 0
}

// Export сериализуемое состояние для Cache Manager.
func (j *Journal) Export() entities.PendingChangesQueue {
	j.mu.Lock()
	defer j.mu.Unlock()

	return entities.PendingChangesQueue{
		Changes:    append([]entities.Change(nil), j.changes...),
		RetryCount: j.retryCount,
	}
}

// Restore восстанавливает очередь из персистентного снапшота после рестарта.
func (j *Journal) Restore(queue entities.PendingChangesQueue) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.changes = append([]entities.Change(nil), queue.Changes...)
	j.retryCount = queue.RetryCount
}
