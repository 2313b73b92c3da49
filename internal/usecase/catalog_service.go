package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
)

// CatalogService serves catalog reads that do not depend on a viewer's
// selection.
type CatalogService struct {
	sportRepo sport.Repository
	newsRepo  news.Repository
}

func NewCatalogService(sportRepo sport.Repository, newsRepo news.Repository) *CatalogService {
	return &CatalogService{
		sportRepo: sportRepo,
		newsRepo:  newsRepo,
	}
}

func (s *CatalogService) ListSports(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSports")
	defer span.End()

	items, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return items, nil
}

func (s *CatalogService) ListNews(ctx context.Context) ([]news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListNews")
	defer span.End()

	items, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}
