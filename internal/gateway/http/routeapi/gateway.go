package routeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	syncsvc "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/service/sync"
	retrierconfig "github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/retrier"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "route-api"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const maxResponseBytes = 4 << 20

// Gateway JSON-клиент удаленного авторитета. Ошибки транспорта мапятся в
// sync.ErrRemoteUnavailable (ретраябельно), авторитетный отказ в
// sync.RejectionError и не ретраится никогда.
type Gateway struct {
	client   doer
	retrier  retrier
	baseURL  string
	clientID string
}

func New(client doer, baseURL, clientID string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		baseURL:  baseURL,
		clientID: clientID,
	}
}

func (g *Gateway) CreateSession(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, error) {
	var resp createSessionResponse

	err := g.executeWithMetrics(ctx, "CreateSession", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/api/v1/session", toCredentialsRequest(creds), &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway route-api, create session: %w", err)
	}

	if !resp.Success || resp.Session == nil {
		return nil, fmt.Errorf("gateway route-api, create session: %w", &syncsvc.RejectionError{Message: resp.Error})
	}
	return toDomainSession(resp.Session), nil
}

func (g *Gateway) FetchPackages(ctx context.Context, creds entities.Credentials) (*entities.DeliverySession, int, error) {
	var resp fetchPackagesResponse

	err := g.executeWithMetrics(ctx, "FetchPackages", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/api/v1/packages", toCredentialsRequest(creds), &resp)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("gateway route-api, fetch packages: %w", err)
	}

	if !resp.Success || resp.Session == nil {
		return nil, 0, fmt.Errorf("gateway route-api, fetch packages: %w", &syncsvc.RejectionError{Message: resp.Error})
	}
	return toDomainSession(resp.Session), resp.NewPackagesCount, nil
}

func (g *Gateway) GetSession(ctx context.Context, sessionID string) (*entities.DeliverySession, error) {
	var resp sessionDTO

	err := g.executeWithMetrics(ctx, "GetSession", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/api/v1/session/"+sessionID, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway route-api, get session %s: %w", sessionID, err)
	}

	return toDomainSession(&resp), nil
}

func (g *Gateway) Scan(ctx context.Context, sessionID, tracking string) (*entities.RemoteScan, error) {
	req := scanRequest{
		SessionID: sessionID,
		Tracking:  tracking,
	}

	var resp scanResponse

	err := g.executeWithMetrics(ctx, "Scan", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/api/v1/scan", req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway route-api, scan %s: %w", tracking, err)
	}

	remote := &entities.RemoteScan{
		Found:         resp.Found,
		RoutePosition: resp.RoutePosition,
	}
	if resp.Package != nil {
		pkg := toDomainPackage(*resp.Package)
		remote.Package = &pkg
	}
	return remote, nil
}

func (g *Gateway) Sync(ctx context.Context, sessionID string, lastSync int64, changes []entities.Change) (*entities.SyncResult, error) {
	req := syncRequest{
		SessionID: sessionID,
		ClientID:  g.clientID,
		LastSync:  lastSync,
		Changes:   changes,
	}

	var resp syncResponse

	err := g.executeWithMetrics(ctx, "Sync", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/api/v1/sync", req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway route-api, sync: %w", err)
	}

	if !resp.Success || resp.Session == nil {
		return nil, fmt.Errorf("gateway route-api, sync: %w", &syncsvc.RejectionError{Message: resp.Error})
	}

	return &entities.SyncResult{
		Session:           toDomainSession(resp.Session),
		ConflictsResolved: resp.ConflictsResolved,
		ChangesApplied:    resp.ChangesApplied,
	}, nil
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", syncsvc.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", syncsvc.ErrRemoteUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError,
		resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", syncsvc.ErrRemoteUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return &syncsvc.RejectionError{Message: fmt.Sprintf("status %d: %s", resp.StatusCode, raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &syncsvc.RejectionError{Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, syncsvc.ErrRemoteUnavailable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, strconv.FormatUint(attempt, 10)).Inc()
	}

	return err
}

func getOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, syncsvc.ErrRemoteUnavailable):
		return "unavailable"
	default:
		var rejection *syncsvc.RejectionError
		if errors.As(err, &rejection) {
			return "rejected"
		}
		return "unknown"
	}
}
