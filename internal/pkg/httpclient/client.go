package httpclient

import (
	"net/http"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
)

// New клиент для запросов к route API. Жесткий таймаут на весь запрос:
// мобильная сеть умеет зависать на установке соединения, а ретраи и
// классификация сбоев живут уровнем выше, в gateway.
func New(cfg *config.RouteAPI) *http.Client {
	return &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        4,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
