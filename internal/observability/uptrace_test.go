package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/sportsboard/internal/config"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "sportsboard-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "sportsboard-api",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestResourceAttributes_DescribeCatalog(t *testing.T) {
	cfg := config.Config{
		CatalogSource:           config.CatalogSourcePostgres,
		CacheEnabled:            true,
		DefaultSport:            "basketball",
		ContactRateLimitBackend: config.RateLimitBackendRedis,
	}

	got := map[string]string{}
	for _, attr := range resourceAttributes(cfg) {
		got[string(attr.Key)] = attr.Value.Emit()
	}

	want := map[string]string{
		"sportsboard.catalog.source":             config.CatalogSourcePostgres,
		"sportsboard.catalog.cache_enabled":      "true",
		"sportsboard.default_sport":              "basketball",
		"sportsboard.contact.rate_limit_backend": config.RateLimitBackendRedis,
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("expected %s=%q, got %q", key, value, got[key])
		}
	}

	if attrs := resourceAttributes(config.Config{CatalogSource: config.CatalogSourceMemory}); len(attrs) != 3 {
		t.Fatalf("expected rate limit backend to be omitted when unset, got %d attrs", len(attrs))
	}
}
