package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
)

type WarmupResult struct {
	Sports     int
	Teams      int
	Players    int
	Failed     int
	DurationMs int64
}

// WarmupService walks the whole catalog once so read-through caches are hot
// before viewers arrive.
type WarmupService struct {
	repos   CatalogRepositories
	workers int
	logger  *logging.Logger
}

func NewWarmupService(repos CatalogRepositories, workers int, logger *logging.Logger) *WarmupService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		repos:   repos,
		workers: workers,
		logger:  logger,
	}
}

func (s *WarmupService) Run(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	start := time.Now()
	result := WarmupResult{}

	sports, err := s.repos.Sports.List(ctx)
	if err != nil {
		return result, fmt.Errorf("warm sports: %w", err)
	}
	result.Sports = len(sports)

	if _, err := s.repos.News.List(ctx); err != nil {
		s.logger.WarnContext(ctx, "warm news failed", "error", err)
		result.Failed++
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return result, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		failed  atomic.Int32
		players atomic.Int32
		mu      sync.Mutex
		teams   []team.Team
		workers sync.WaitGroup
	)

	submit := func(task func()) error {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			task()
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
		return nil
	}

	for _, item := range sports {
		sportName := item.Key()
		if err := submit(func() {
			items, err := s.repos.Teams.ListBySport(ctx, sportName)
			if err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "warm teams failed", "sport", sportName, "error", err)
				return
			}
			mu.Lock()
			teams = append(teams, items...)
			mu.Unlock()
		}); err != nil {
			workers.Wait()
			return result, err
		}
	}
	workers.Wait()

	for _, item := range teams {
		teamName := item.Name
		if err := submit(func() {
			items, err := s.repos.Players.ListByTeam(ctx, teamName)
			if err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "warm players failed", "team", teamName, "error", err)
				return
			}
			players.Add(int32(len(items)))
		}); err != nil {
			workers.Wait()
			return result, err
		}
	}
	workers.Wait()

	result.Teams = len(teams)
	result.Players = int(players.Load())
	result.Failed += int(failed.Load())
	result.DurationMs = time.Since(start).Milliseconds()

	s.logger.InfoContext(ctx, "catalog warm-up finished",
		"sports", result.Sports,
		"teams", result.Teams,
		"players", result.Players,
		"failed", result.Failed,
		"duration_ms", result.DurationMs,
	)

	return result, nil
}
