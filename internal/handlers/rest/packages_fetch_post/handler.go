package packages_fetch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type fetchResponse struct {
	NewCount int `json:"new_count"`
}

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	newCount, err := h.service.FetchPackages(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, tournee.ErrNoActiveSession):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, syncsvc.ErrRemoteUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := fetchResponse{
		NewCount: newCount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
