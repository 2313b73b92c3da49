package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	qb "github.com/riskibarqy/sportsboard/internal/platform/querybuilder"
)

var (
	sportColumns  = []string{"id", "name", "image_url", "description"}
	teamColumns   = []string{"id", "name", "logo_url", "sport", "description", "wins", "losses", "ties", "points", "ranking"}
	playerColumns = []string{"id", "name", "image_url", "team", "position", "points", "assists", "rebounds", "goals", "tackles", "saves"}
	newsColumns   = []string{"id", "title", "summary", "published_on", "image_url", "author"}
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select(sportColumns...).From("sports").OrderBy("id").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select sports query")
	}

	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select sports")
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportName string) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).
		From("teams").
		Where(qb.EqFold("sport", sport.NormalizeKey(sportName))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select teams by sport query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select teams by sport=%s", sportName)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamName string) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).
		From("players").
		Where(qb.Eq("team", teamName)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select players by team=%s", teamName)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	query, args, err := qb.Select(newsColumns...).
		From("news_articles").
		OrderBy("published_on DESC", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select news query")
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select news")
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
