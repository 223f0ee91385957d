package sync_post

import (
	"encoding/json"
	"errors"
	"net/http"

	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// Форсированная синхронизация. Исход flush отражается в возвращаемом
// состоянии: сетевой сбой это не ошибка запроса, UI показывает Offline.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.SyncNow(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, tournee.ErrNoActiveSession):
			w.WriteHeader(http.StatusNotFound)
			return
		case errors.Is(err, syncsvc.ErrSyncInFlight):
			w.WriteHeader(http.StatusConflict)
			return
		}
		h.log.With(
			logger.NewField("error", err),
		).Warn("forced sync failed")
	}

	state, err := h.service.SyncStatus()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(state)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
