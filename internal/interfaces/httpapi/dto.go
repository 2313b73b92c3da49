package httpapi

import (
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/comparison"
	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/usecase"
)

const contactThankYouMessage = "Thank you for your message! We'll get back to you soon."

type selectSportRequest struct {
	Sport string `json:"sport" validate:"required"`
}

type loadTeamsRequest struct {
	Sport string `json:"sport" validate:"required"`
}

type loadPlayersRequest struct {
	Team string `json:"team" validate:"required"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type sportDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type teamStatsDTO struct {
	Wins    int      `json:"wins"`
	Losses  int      `json:"losses"`
	Ties    *int     `json:"ties,omitempty"`
	Points  *float64 `json:"points,omitempty"`
	Ranking int      `json:"ranking"`
}

type teamDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Logo        string       `json:"logo"`
	Sport       string       `json:"sport"`
	Description string       `json:"description"`
	Stats       teamStatsDTO `json:"stats"`
}

type playerDTO struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Image     string             `json:"image"`
	Team      string             `json:"team"`
	Position  string             `json:"position"`
	StatShape string             `json:"statShape"`
	Stats     map[string]float64 `json:"stats"`
}

type newsDTO struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Author  string `json:"author"`
}

type stateDTO struct {
	Sports        []sportDTO  `json:"sports"`
	Teams         []teamDTO   `json:"teams"`
	Players       []playerDTO `json:"players"`
	News          []newsDTO   `json:"news"`
	Loading       bool        `json:"loading"`
	Error         *string     `json:"error"`
	SelectedSport string      `json:"selectedSport"`
}

type statFieldDTO struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type playerCardDTO struct {
	Player playerDTO      `json:"player"`
	Fields []statFieldDTO `json:"fields"`
}

type comparisonRowDTO struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Left    *float64 `json:"left"`
	Right   *float64 `json:"right"`
	Outcome string   `json:"outcome"`
}

type playerComparisonDTO struct {
	Left      playerDTO          `json:"left"`
	Right     playerDTO          `json:"right"`
	Rows      []comparisonRowDTO `json:"rows"`
	LeftWins  int                `json:"leftWins"`
	RightWins int                `json:"rightWins"`
}

type teamComparisonDTO struct {
	Left      teamDTO            `json:"left"`
	Right     teamDTO            `json:"right"`
	Rows      []comparisonRowDTO `json:"rows"`
	LeftWins  int                `json:"leftWins"`
	RightWins int                `json:"rightWins"`
}

type contactReceiptDTO struct {
	ID          string `json:"id"`
	SubmittedAt string `json:"submittedAt"`
	Message     string `json:"message"`
}

func sportToDTO(v sport.Sport) sportDTO {
	return sportDTO{
		ID:          v.ID,
		Name:        v.Name,
		Image:       v.ImageURL,
		Description: v.Description,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		Logo:        v.LogoURL,
		Sport:       v.Sport,
		Description: v.Description,
		Stats: teamStatsDTO{
			Wins:    v.Stats.Wins,
			Losses:  v.Stats.Losses,
			Ties:    v.Stats.Ties,
			Points:  v.Stats.Points,
			Ranking: v.Stats.Ranking,
		},
	}
}

func playerToDTO(v player.Player) playerDTO {
	stats := v.StatsOrGeneric()
	values := stats.Values()

	out := make(map[string]float64, len(values))
	for key, value := range values {
		if n, ok := value.Float(); ok {
			out[key] = n
		}
	}

	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Image:     v.ImageURL,
		Team:      v.Team,
		Position:  v.Position,
		StatShape: string(stats.Shape()),
		Stats:     out,
	}
}

func newsToDTO(v news.Article) newsDTO {
	return newsDTO{
		ID:      v.ID,
		Title:   v.Title,
		Summary: v.Summary,
		Date:    v.Date,
		Image:   v.ImageURL,
		Author:  v.Author,
	}
}

func stateToDTO(v usecase.State) stateDTO {
	out := stateDTO{
		Sports:        make([]sportDTO, 0, len(v.Sports)),
		Teams:         make([]teamDTO, 0, len(v.Teams)),
		Players:       make([]playerDTO, 0, len(v.Players)),
		News:          make([]newsDTO, 0, len(v.News)),
		Loading:       v.Loading,
		SelectedSport: v.SelectedSport,
	}
	for _, item := range v.Sports {
		out.Sports = append(out.Sports, sportToDTO(item))
	}
	for _, item := range v.Teams {
		out.Teams = append(out.Teams, teamToDTO(item))
	}
	for _, item := range v.Players {
		out.Players = append(out.Players, playerToDTO(item))
	}
	for _, item := range v.News {
		out.News = append(out.News, newsToDTO(item))
	}
	if v.Error != "" {
		msg := v.Error
		out.Error = &msg
	}

	return out
}

func playerCardToDTO(v player.Player) playerCardDTO {
	fields := player.SelectStatFields(v.StatsOrGeneric())
	out := playerCardDTO{
		Player: playerToDTO(v),
		Fields: make([]statFieldDTO, 0, len(fields)),
	}
	for _, field := range fields {
		out.Fields = append(out.Fields, statFieldDTO{
			Key:   field.Key,
			Label: field.Label,
			Value: field.Value,
		})
	}
	return out
}

func comparisonRowsToDTO(rows []comparison.Row) []comparisonRowDTO {
	out := make([]comparisonRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, comparisonRowDTO{
			Key:     row.Key,
			Label:   row.Label,
			Left:    valuePtr(row.Left),
			Right:   valuePtr(row.Right),
			Outcome: string(row.Outcome),
		})
	}
	return out
}

func valuePtr(v comparison.Value) *float64 {
	n, ok := v.Float()
	if !ok {
		return nil
	}
	return &n
}

func contactReceiptToDTO(v usecase.ContactReceipt) contactReceiptDTO {
	return contactReceiptDTO{
		ID:          v.ID,
		SubmittedAt: v.SubmittedAt.Format(time.RFC3339),
		Message:     contactThankYouMessage,
	}
}
