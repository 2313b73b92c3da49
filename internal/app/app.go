package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/id"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/ratelimit"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const (
	redisPingTimeout       = 3 * time.Second
	contactRateLimitPrefix = "sportsboard:contact:"
)

// App holds the HTTP server and the background work that runs next to it.
type App struct {
	Server *http.Server

	cfg      config.Config
	logger   *logging.Logger
	catalog  *catalog
	sessions *usecase.SessionRegistry
	warmup   *usecase.WarmupService
	redis    *redis.Client
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	cat, err := buildCatalog(ctx, cfg, logger.Named("catalog"))
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		catalog: cat,
	}

	limiter, err := a.buildContactLimiter(ctx)
	if err != nil {
		_ = cat.Close()
		return nil, err
	}

	ids := id.NewUUIDGenerator()
	a.sessions = usecase.NewSessionRegistry(
		cache.NewStore(cfg.SessionTTL),
		cat.repos,
		usecase.ProviderOptions{
			DefaultSport: cfg.DefaultSport,
			Logger:       logger.Named("provider"),
		},
		ids,
	)
	a.warmup = usecase.NewWarmupService(cat.repos, cfg.WarmupWorkers, logger.Named("warmup"))

	handler := httpapi.NewHandler(
		usecase.NewCatalogService(cat.repos.Sports, cat.repos.News),
		usecase.NewComparisonService(cat.repos.Teams, cat.repos.Players),
		usecase.NewContactService(usecase.ContactServiceOptions{
			SubmitDelay: cfg.ContactSubmitDelay,
			Limiter:     limiter,
			IDGenerator: ids,
			Logger:      logger.Named("contact"),
		}),
		logger,
	)
	router := httpapi.NewRouter(handler, a.sessions, logger, cfg.CORSAllowedOrigins, httpapi.SessionCookieOptions{
		TTL:    cfg.SessionTTL,
		Secure: cfg.AppEnv == config.EnvProd,
	})

	a.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildContactLimiter(ctx context.Context) (ratelimit.Limiter, error) {
	limitCfg := ratelimit.Config{
		PerMinute: a.cfg.ContactRatePerMinute,
		Burst:     a.cfg.ContactRateBurst,
	}

	if a.cfg.ContactRateLimitBackend != config.RateLimitBackendRedis {
		return ratelimit.NewMemory(limitCfg), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", a.cfg.RedisAddr, err)
	}

	a.redis = client
	a.logger.Info("contact rate limiter ready", "backend", config.RateLimitBackendRedis, "addr", a.cfg.RedisAddr)
	return ratelimit.NewRedis(client, contactRateLimitPrefix, limitCfg), nil
}

// RunBackground starts the cache warm-up and the session sweeper. Both stop
// when ctx is done.
func (a *App) RunBackground(ctx context.Context) {
	if a.cfg.WarmupEnabled {
		go func() {
			if _, err := a.warmup.Run(ctx); err != nil {
				a.logger.WarnContext(ctx, "catalog warm-up failed", "error", err)
			}
		}()
	}

	go a.sweepLoop(ctx)
}

func (a *App) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.sweep(ctx)
		}
	}
}

func (a *App) sweep(ctx context.Context) {
	sessions := a.sessions.Sweep(ctx)
	entries := 0
	if a.catalog.store != nil {
		entries = a.catalog.store.Sweep(ctx)
	}
	if sessions > 0 || entries > 0 {
		a.logger.DebugContext(ctx, "expired entries swept",
			"sessions", sessions,
			"catalog_entries", entries,
			"active_sessions", a.sessions.Len(),
		)
	}
}

// Close releases the catalog database and the redis client.
func (a *App) Close() error {
	var errs []error
	if err := a.catalog.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close catalog database: %w", err))
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
