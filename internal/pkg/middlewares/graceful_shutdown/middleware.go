package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отсекает новые запросы UI, пока демон дорабатывает
// начатое: финальный flush очереди важнее очередного опроса статуса.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					http.Error(w, "Driver client is shutting down", http.StatusServiceUnavailable)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
