package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Societe  string `json:"societe"`
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
	var req loginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" || req.Societe == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(r.Context(), entities.Credentials{
		Username: req.Username,
		Password: req.Password,
		Societe:  req.Societe,
	})
	if err != nil {
		var rejection *syncsvc.RejectionError
		switch {
		case errors.As(err, &rejection):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, syncsvc.ErrRemoteUnavailable):
			// офлайн и без валидного кеша: стартовать не из чего
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(session)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
