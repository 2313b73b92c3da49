package cache

import (
	"context"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	basecache "github.com/riskibarqy/sportsboard/internal/platform/cache"
)

type SportRepository struct {
	next  sport.Repository
	cache *basecache.Store
}

func NewSportRepository(next sport.Repository, cache *basecache.Store) *SportRepository {
	return &SportRepository{next: next, cache: cache}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	v, err := r.cache.GetOrLoad(ctx, "sport:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]sport.Sport(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]sport.Sport)
	return append([]sport.Sport(nil), items...), nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportName string) ([]team.Team, error) {
	key := "team:sport:" + sport.NormalizeKey(sportName)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySport(ctx, sportName)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamName string) ([]player.Player, error) {
	key := "player:team:" + teamName
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamName)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

type NewsRepository struct {
	next  news.Repository
	cache *basecache.Store
}

func NewNewsRepository(next news.Repository, cache *basecache.Store) *NewsRepository {
	return &NewsRepository{next: next, cache: cache}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	v, err := r.cache.GetOrLoad(ctx, "news:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]news.Article(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]news.Article)
	return append([]news.Article(nil), items...), nil
}
