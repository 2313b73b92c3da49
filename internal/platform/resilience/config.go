package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig tunes a CircuitBreaker. Zero values fall back to the
// defaults when the breaker is built.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Validate rejects values an operator set explicitly but that cannot work.
func (c CircuitBreakerConfig) Validate() error {
	switch {
	case c.FailureThreshold < 1:
		return fmt.Errorf("failure threshold must be >= 1, got %d", c.FailureThreshold)
	case c.OpenTimeout <= 0:
		return fmt.Errorf("open timeout must be positive, got %s", c.OpenTimeout)
	case c.HalfOpenMaxReq < 1:
		return fmt.Errorf("half-open max requests must be >= 1, got %d", c.HalfOpenMaxReq)
	}
	return nil
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}
