package sync

import (
	"errors"
	"fmt"
)

var (
	// ErrSyncInFlight параллельный flush пропускается, не ставится в очередь.
	ErrSyncInFlight = errors.New("sync already in flight")

	// ErrRemoteUnavailable транспортный сбой или таймаут: очередь изменений
	// сохраняется, машина состояний уходит в Offline.
	ErrRemoteUnavailable = errors.New("remote authority unavailable")
)

// RejectionError авторитетный отказ сервера: не ретраится, очередь сохраняется
// для инспекции и повторной попытки оператором, машина уходит в Error.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("remote authority rejected request: %s", e.Message)
}
