package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

type SportRepository struct {
	mu      sync.RWMutex
	sports  []sport.Sport
	latency Latency
}

func NewSportRepository(sports []sport.Sport, latency Latency) *SportRepository {
	return &SportRepository{
		sports:  append([]sport.Sport(nil), sports...),
		latency: latency,
	}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	if err := r.latency.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sport.Sport, 0, len(r.sports))
	out = append(out, r.sports...)
	return out, nil
}
