package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}

	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
		uptrace.WithResourceAttributes(resourceAttributes(cfg)...),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
		"catalog_source", cfg.CatalogSource,
	)

	return uptrace.Shutdown, nil
}

// resourceAttributes describe which catalog and defaults a replica serves.
func resourceAttributes(cfg config.Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("sportsboard.catalog.source", cfg.CatalogSource),
		attribute.Bool("sportsboard.catalog.cache_enabled", cfg.CacheEnabled),
		attribute.String("sportsboard.default_sport", cfg.DefaultSport),
	}
	if cfg.ContactRateLimitBackend != "" {
		attrs = append(attrs, attribute.String("sportsboard.contact.rate_limit_backend", cfg.ContactRateLimitBackend))
	}
	return attrs
}
