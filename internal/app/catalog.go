package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/sportsboard/internal/config"
	cacherepo "github.com/riskibarqy/sportsboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/guard"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sportsboard/internal/platform/cache"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/riskibarqy/sportsboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsboard/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

// catalog is the wired catalog source plus whatever must be released on
// shutdown.
type catalog struct {
	repos usecase.CatalogRepositories
	store *cache.Store
	db    *sqlx.DB
}

func (c *catalog) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func buildCatalog(ctx context.Context, cfg config.Config, logger *logging.Logger) (*catalog, error) {
	out := &catalog{}

	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		dsn := parseCatalogDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
		db, err := openCatalogDB(ctx, dsn)
		if err != nil {
			return nil, err
		}
		out.db = db
		out.repos = usecase.CatalogRepositories{
			Sports:  postgres.NewSportRepository(db),
			Teams:   postgres.NewTeamRepository(db),
			Players: postgres.NewPlayerRepository(db),
			News:    postgres.NewNewsRepository(db),
		}
		logger.Info("catalog database connected", "dsn", dsn.Redacted(), "db_name", dsn.name)
	default:
		sports, teams, players, articles := memory.NewCatalog(memory.Latency(cfg.CatalogLatency))
		out.repos = usecase.CatalogRepositories{
			Sports:  sports,
			Teams:   teams,
			Players: players,
			News:    articles,
		}
	}

	if cfg.CatalogCircuit.Enabled {
		breaker := resilience.NewCircuitBreaker(cfg.CatalogCircuit)
		breaker.OnStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("catalog circuit state changed", "from", from, "to", to)
		})
		out.repos = usecase.CatalogRepositories{
			Sports:  guard.NewSportRepository(out.repos.Sports, breaker),
			Teams:   guard.NewTeamRepository(out.repos.Teams, breaker),
			Players: guard.NewPlayerRepository(out.repos.Players, breaker),
			News:    guard.NewNewsRepository(out.repos.News, breaker),
		}
	}

	if cfg.CacheEnabled {
		out.store = cache.NewStore(cfg.CacheTTL)
		out.repos = usecase.CatalogRepositories{
			Sports:  cacherepo.NewSportRepository(out.repos.Sports, out.store),
			Teams:   cacherepo.NewTeamRepository(out.repos.Teams, out.store),
			Players: cacherepo.NewPlayerRepository(out.repos.Players, out.store),
			News:    cacherepo.NewNewsRepository(out.repos.News, out.store),
		}
	}

	logger.Info("catalog source ready",
		"source", cfg.CatalogSource,
		"latency", cfg.CatalogLatency.String(),
		"circuit_enabled", cfg.CatalogCircuit.Enabled,
		"cache_enabled", cfg.CacheEnabled,
	)

	return out, nil
}

func openCatalogDB(ctx context.Context, dsn catalogDSN) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", dsn.conn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dsn.name),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog database: %w", err)
	}

	return db, nil
}
