package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// StateChangeFunc is called outside the breaker lock after every transition.
type StateChangeFunc func(from, to CircuitState)

// CircuitBreaker trips after consecutive failures and lets a bounded number
// of probes through once the open timeout has elapsed.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	successes int

	onChange StateChangeFunc
	now      func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		state: CircuitStateClosed,
		now:   time.Now,
	}
}

// OnStateChange registers fn for transitions. It replaces any earlier hook.
func (b *CircuitBreaker) OnStateChange(fn StateChangeFunc) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Execute runs fn when the breaker allows it and records the outcome.
func (b *CircuitBreaker) Execute(fn func() error) error {
	if err := b.Allow(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		b.RecordFailure()
		return err
	}
	b.RecordSuccess()
	return nil
}

func (b *CircuitBreaker) Allow() error {
	var err error
	b.update(func(now time.Time) {
		if b.state == CircuitStateOpen {
			if now.Sub(b.openedAt) < b.cfg.OpenTimeout {
				err = ErrCircuitOpen
				return
			}
			b.enter(CircuitStateHalfOpen, now)
		}

		if b.state == CircuitStateHalfOpen {
			if b.probes >= b.cfg.HalfOpenMaxReq {
				err = ErrCircuitOpen
				return
			}
			b.probes++
		}
	})
	return err
}

func (b *CircuitBreaker) RecordSuccess() {
	b.update(func(now time.Time) {
		switch b.state {
		case CircuitStateClosed:
			b.failures = 0
		case CircuitStateHalfOpen:
			b.releaseProbe()
			b.successes++
			if b.successes >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
				b.enter(CircuitStateClosed, now)
			}
		}
	})
}

func (b *CircuitBreaker) RecordFailure() {
	b.update(func(now time.Time) {
		switch b.state {
		case CircuitStateClosed:
			b.failures++
			if b.failures >= b.cfg.FailureThreshold {
				b.enter(CircuitStateOpen, now)
			}
		case CircuitStateHalfOpen:
			b.releaseProbe()
			b.enter(CircuitStateOpen, now)
		case CircuitStateOpen:
			b.openedAt = now
		}
	})
}

// State reports half-open as soon as the open timeout has elapsed, even
// before the next call moves the breaker there.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) update(fn func(now time.Time)) {
	b.mu.Lock()
	from := b.state
	fn(b.now())
	to := b.state
	hook := b.onChange
	b.mu.Unlock()

	if hook != nil && from != to {
		hook(from, to)
	}
}

func (b *CircuitBreaker) enter(state CircuitState, now time.Time) {
	b.state = state
	b.probes = 0
	b.successes = 0

	switch state {
	case CircuitStateOpen:
		b.openedAt = now
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	}
}

func (b *CircuitBreaker) releaseProbe() {
	if b.probes > 0 {
		b.probes--
	}
}
