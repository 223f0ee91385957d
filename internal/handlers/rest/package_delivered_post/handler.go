package package_delivered_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
)

type deliveredRequest struct {
	Tracking      string `json:"tracking"`
	DeliveryProof string `json:"delivery_proof"`
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
	var req deliveredRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.MarkDelivered(r.Context(), req.Tracking, req.DeliveryProof)
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
