package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/infrastructure/repository/memory"
	newsmock "github.com/riskibarqy/sportsboard/internal/mocks/domain/news"
	playermock "github.com/riskibarqy/sportsboard/internal/mocks/domain/player"
	sportmock "github.com/riskibarqy/sportsboard/internal/mocks/domain/sport"
	teammock "github.com/riskibarqy/sportsboard/internal/mocks/domain/team"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestWarmupService_RunWalksWholeCatalog(t *testing.T) {
	sports, teams, players, articles := memory.NewCatalog(0)
	svc := NewWarmupService(CatalogRepositories{
		Sports:  sports,
		Teams:   teams,
		Players: players,
		News:    articles,
	}, 3, logging.NewNop())

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("run warm-up: %v", err)
	}
	if result.Sports != 4 || result.Teams != 5 || result.Players != 6 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Failed != 0 {
		t.Fatalf("expected no failures, got %d", result.Failed)
	}
}

func TestWarmupService_CountsPartialFailuresUsingMockery(t *testing.T) {
	sportRepo := sportmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	newsRepo := newsmock.NewRepository(t)

	sportRepo.On("List", mock.Anything).Return([]sport.Sport{
		{ID: 1, Name: "Basketball"},
		{ID: 2, Name: "Football"},
	}, nil).Once()
	newsRepo.On("List", mock.Anything).Return([]news.Article(nil), errors.New("feed down")).Once()
	teamRepo.On("ListBySport", mock.Anything, "basketball").Return([]team.Team{
		{ID: 1, Name: "LA Lakers", Sport: "basketball"},
	}, nil).Once()
	teamRepo.On("ListBySport", mock.Anything, "football").Return(nil, errors.New("timeout")).Once()
	playerRepo.On("ListByTeam", mock.Anything, "LA Lakers").Return([]player.Player{
		{ID: 1, Name: "LeBron James", Team: "LA Lakers"},
		{ID: 2, Name: "Anthony Davis", Team: "LA Lakers"},
	}, nil).Once()

	svc := NewWarmupService(CatalogRepositories{
		Sports:  sportRepo,
		Teams:   teamRepo,
		Players: playerRepo,
		News:    newsRepo,
	}, 2, logging.NewNop())

	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("run warm-up: %v", err)
	}
	if result.Teams != 1 || result.Players != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Failed != 2 {
		t.Fatalf("expected 2 failures (news + football teams), got %d", result.Failed)
	}
}

func TestWarmupService_SportFailureAborts(t *testing.T) {
	sportRepo := sportmock.NewRepository(t)
	sportRepo.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	svc := NewWarmupService(CatalogRepositories{
		Sports:  sportRepo,
		Teams:   teammock.NewRepository(t),
		Players: playermock.NewRepository(t),
		News:    newsmock.NewRepository(t),
	}, 0, nil)

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatalf("expected error when sports cannot be listed")
	}
}
