package scan_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/session"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/tournee"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type scanRequest struct {
	Tracking string `json:"tracking"`
}

type scanResponse struct {
	Found         bool              `json:"found"`
	KnownToServer bool              `json:"known_to_server"`
	Package       *entities.Package `json:"package,omitempty"`
	RoutePosition int               `json:"route_position"`
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
	var req scanRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcome, err := h.service.Scan(r.Context(), req.Tracking)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidTracking):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tournee.ErrNoActiveSession):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := scanResponse{
		Found:         outcome.Found,
		KnownToServer: outcome.KnownToServer,
		Package:       outcome.Package,
		RoutePosition: outcome.RoutePosition,
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
