package optimization_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
)

type optimizationRequest struct {
	OrderedIDs      []string `json:"ordered_ids"`
	TotalDistanceKm float64  `json:"total_distance_km"`
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
	var req optimizationRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(req.OrderedIDs) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ApplyOptimization(r.Context(), req.OrderedIDs, req.TotalDistanceKm)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidOrder):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tournee.ErrNoActiveSession):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
