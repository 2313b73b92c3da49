package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/platform/resilience"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

// run executes fn behind breaker. Context cancellation is not counted as a
// dependency failure.
func run(ctx context.Context, breaker *resilience.CircuitBreaker, fn func(context.Context) error) error {
	if err := breaker.Allow(); err != nil {
		return fmt.Errorf("%w: catalog source: %v", usecase.ErrDependencyUnavailable, err)
	}

	err := fn(ctx)
	switch {
	case err == nil:
		breaker.RecordSuccess()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		breaker.RecordSuccess()
	default:
		breaker.RecordFailure()
	}
	return err
}

type SportRepository struct {
	next    sport.Repository
	breaker *resilience.CircuitBreaker
}

func NewSportRepository(next sport.Repository, breaker *resilience.CircuitBreaker) *SportRepository {
	return &SportRepository{next: next, breaker: breaker}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	var out []sport.Sport
	err := run(ctx, r.breaker, func(ctx context.Context) error {
		items, err := r.next.List(ctx)
		out = items
		return err
	})
	return out, err
}

type TeamRepository struct {
	next    team.Repository
	breaker *resilience.CircuitBreaker
}

func NewTeamRepository(next team.Repository, breaker *resilience.CircuitBreaker) *TeamRepository {
	return &TeamRepository{next: next, breaker: breaker}
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportName string) ([]team.Team, error) {
	var out []team.Team
	err := run(ctx, r.breaker, func(ctx context.Context) error {
		items, err := r.next.ListBySport(ctx, sportName)
		out = items
		return err
	})
	return out, err
}

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamName string) ([]player.Player, error) {
	var out []player.Player
	err := run(ctx, r.breaker, func(ctx context.Context) error {
		items, err := r.next.ListByTeam(ctx, teamName)
		out = items
		return err
	})
	return out, err
}

type NewsRepository struct {
	next    news.Repository
	breaker *resilience.CircuitBreaker
}

func NewNewsRepository(next news.Repository, breaker *resilience.CircuitBreaker) *NewsRepository {
	return &NewsRepository{next: next, breaker: breaker}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	var out []news.Article
	err := run(ctx, r.breaker, func(ctx context.Context) error {
		items, err := r.next.List(ctx)
		out = items
		return err
	})
	return out, err
}
