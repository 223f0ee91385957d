package logout_post

import (
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.Logout(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, tournee.ErrNoActiveSession):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
