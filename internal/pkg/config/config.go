package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Sync struct {
		IdleInterval   time.Duration // интервал flush без активности водителя
		ActiveInterval time.Duration // интервал flush при недавних сканах
		ActivityWindow time.Duration // окно, в котором активность считается недавней
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Storage struct {
		SQLitePath string
		CacheTTL   time.Duration
	}

	RouteAPI struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	Config struct {
		Sync     Sync
		Server   HTTPServer
		Storage  Storage
		RouteAPI RouteAPI
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	idleInterval, err := osGetEnvDuration("SYNC_IDLE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	activeInterval, err := osGetEnvDuration("SYNC_ACTIVE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	activityWindow, err := osGetEnvDuration("SYNC_ACTIVITY_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cacheTTL, err := osGetEnvDuration("CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routeAPITimeout, err := osGetEnvDuration("ROUTE_API_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Sync: Sync{
			IdleInterval:   idleInterval,
			ActiveInterval: activeInterval,
			ActivityWindow: activityWindow,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Storage: Storage{
			SQLitePath: os.Getenv("SQLITE_PATH"),
			CacheTTL:   cacheTTL,
		},
		RouteAPI: RouteAPI{
			BaseURL:        os.Getenv("ROUTE_API_BASE_URL"),
			RequestTimeout: routeAPITimeout,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Storage.SQLitePath == "" {
		return errors.New("SQLITE_PATH is required")
	}

	if cfg.RouteAPI.BaseURL == "" {
		return errors.New("ROUTE_API_BASE_URL is required")
	}
	if cfg.RouteAPI.RequestTimeout == time.Duration(0) {
		return errors.New("ROUTE_API_REQUEST_TIMEOUT is required")
	}

	if cfg.Sync.IdleInterval == time.Duration(0) {
		return errors.New("SYNC_IDLE_INTERVAL is required")
	}
	if cfg.Sync.ActiveInterval == time.Duration(0) {
		return errors.New("SYNC_ACTIVE_INTERVAL is required")
	}
	if cfg.Sync.ActivityWindow == time.Duration(0) {
		return errors.New("SYNC_ACTIVITY_WINDOW is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
