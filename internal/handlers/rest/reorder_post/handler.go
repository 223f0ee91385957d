package reorder_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
)

type reorderRequest struct {
	InternalID  string `json:"internal_id"`
	NewPosition int    `json:"new_position"`
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
	var req reorderRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Reorder(r.Context(), req.InternalID, req.NewPosition)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidPosition):
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
