package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteTripsOnFailures(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})
	boom := errors.New("catalog unavailable")

	if err := b.Execute(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected dependency error, got %v", err)
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Fatalf("expected fn to be skipped while open")
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true, FailureThreshold: 3}.withDefaults()
	want := DefaultCircuitBreakerConfig()
	if got.FailureThreshold != 3 || got.OpenTimeout != want.OpenTimeout || got.HalfOpenMaxReq != want.HalfOpenMaxReq {
		t.Fatalf("unexpected config with defaults: %+v", got)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	if err := DefaultCircuitBreakerConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}

	invalid := []CircuitBreakerConfig{
		{FailureThreshold: 0, OpenTimeout: time.Second, HalfOpenMaxReq: 1},
		{FailureThreshold: 1, OpenTimeout: 0, HalfOpenMaxReq: 1},
		{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 0},
	}
	for _, cfg := range invalid {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}

func TestCircuitBreaker_ReportsTransitions(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 1})
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	var got []string
	b.OnStateChange(func(from, to CircuitState) {
		// State must be callable from the hook.
		_ = b.State()
		got = append(got, string(from)+"->"+string(to))
	})

	b.RecordFailure()
	now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	b.RecordFailure()
	b.RecordFailure()

	want := []string{"closed->open", "open->half_open", "half_open->open"}
	if len(got) != len(want) {
		t.Fatalf("expected transitions %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected transitions %v, got %v", want, got)
		}
	}
}
