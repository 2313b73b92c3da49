package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether one more event for key fits in its budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Config describes a per-key budget of PerMinute events with Burst headroom.
type Config struct {
	PerMinute int
	Burst     int
}

func (c Config) normalized() Config {
	if c.PerMinute < 1 {
		c.PerMinute = 1
	}
	if c.Burst < 1 {
		c.Burst = 1
	}
	return c
}

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Memory keeps one token bucket per key inside the process.
type Memory struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
	limiters map[string]*keyedLimiter
	now      func() time.Time
}

func NewMemory(cfg Config) *Memory {
	cfg = cfg.normalized()
	return &Memory{
		limit:    rate.Every(time.Minute / time.Duration(cfg.PerMinute)),
		burst:    cfg.Burst,
		idle:     10 * time.Minute,
		limiters: make(map[string]*keyedLimiter),
		now:      time.Now,
	}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictIdle(now)
	entry, ok := m.limiters[key]
	if !ok {
		entry = &keyedLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1), nil
}

func (m *Memory) evictIdle(now time.Time) {
	for key, entry := range m.limiters {
		if now.Sub(entry.lastSeen) > m.idle {
			delete(m.limiters, key)
		}
	}
}
