package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
)

const newsDateLayout = "2006-01-02"

type sportTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	ImageURL    string `db:"image_url"`
	Description string `db:"description"`
}

func (m sportTableModel) toDomain() sport.Sport {
	return sport.Sport{
		ID:          m.ID,
		Name:        m.Name,
		ImageURL:    m.ImageURL,
		Description: m.Description,
	}
}

type teamTableModel struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	LogoURL     string          `db:"logo_url"`
	Sport       string          `db:"sport"`
	Description string          `db:"description"`
	Wins        int             `db:"wins"`
	Losses      int             `db:"losses"`
	Ties        sql.NullInt64   `db:"ties"`
	Points      sql.NullFloat64 `db:"points"`
	Ranking     int             `db:"ranking"`
}

func (m teamTableModel) toDomain() team.Team {
	stats := team.Stats{
		Wins:    m.Wins,
		Losses:  m.Losses,
		Ranking: m.Ranking,
		Points:  nullFloat64Ptr(m.Points),
	}
	if m.Ties.Valid {
		ties := int(m.Ties.Int64)
		stats.Ties = &ties
	}

	return team.Team{
		ID:          m.ID,
		Name:        m.Name,
		LogoURL:     m.LogoURL,
		Sport:       sport.NormalizeKey(m.Sport),
		Description: m.Description,
		Stats:       stats,
	}
}

type playerTableModel struct {
	ID       int64           `db:"id"`
	Name     string          `db:"name"`
	ImageURL string          `db:"image_url"`
	Team     string          `db:"team"`
	Position string          `db:"position"`
	Points   float64         `db:"points"`
	Assists  float64         `db:"assists"`
	Rebounds sql.NullFloat64 `db:"rebounds"`
	Goals    sql.NullFloat64 `db:"goals"`
	Tackles  sql.NullFloat64 `db:"tackles"`
	Saves    sql.NullFloat64 `db:"saves"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:       m.ID,
		Name:     m.Name,
		ImageURL: m.ImageURL,
		Team:     m.Team,
		Position: m.Position,
		Stats: player.ClassifyStats(player.RawStats{
			Points:   m.Points,
			Assists:  m.Assists,
			Rebounds: nullFloat64Ptr(m.Rebounds),
			Goals:    nullFloat64Ptr(m.Goals),
			Tackles:  nullFloat64Ptr(m.Tackles),
			Saves:    nullFloat64Ptr(m.Saves),
		}),
	}
}

type newsTableModel struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Summary     string    `db:"summary"`
	PublishedOn time.Time `db:"published_on"`
	ImageURL    string    `db:"image_url"`
	Author      string    `db:"author"`
}

func (m newsTableModel) toDomain() news.Article {
	return news.Article{
		ID:       m.ID,
		Title:    m.Title,
		Summary:  m.Summary,
		Date:     m.PublishedOn.Format(newsDateLayout),
		ImageURL: m.ImageURL,
		Author:   m.Author,
	}
}

func nullFloat64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	out := v.Float64
	return &out
}
