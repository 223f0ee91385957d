package ping_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
)

type pingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := pingResponse{
		Message: pointer.ToString("pong"),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
