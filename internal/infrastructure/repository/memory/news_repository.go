package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
)

type NewsRepository struct {
	mu       sync.RWMutex
	articles []news.Article
	latency  Latency
}

func NewNewsRepository(articles []news.Article, latency Latency) *NewsRepository {
	return &NewsRepository{
		articles: append([]news.Article(nil), articles...),
		latency:  latency,
	}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	if err := r.latency.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Article, 0, len(r.articles))
	out = append(out, r.articles...)
	return out, nil
}
