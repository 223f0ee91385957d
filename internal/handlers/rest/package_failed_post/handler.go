package package_failed_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
)

type failedRequest struct {
	Tracking string `json:"tracking"`
	Reason   string `json:"reason"`
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
	var req failedRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.MarkFailed(r.Context(), req.Tracking, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidTracking):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, session.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tournee.ErrNoActiveSession):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
