package address_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
)

type addressUpdateRequest struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
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
	addressID := mux.Vars(r)["id"]
	if addressID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req addressUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateAddress(r.Context(), addressID, req.Label, req.Lat, req.Lng)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAddressNotFound):
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
