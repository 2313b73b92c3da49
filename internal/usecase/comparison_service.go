package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsboard/internal/domain/comparison"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	teamStatWins    = "wins"
	teamStatLosses  = "losses"
	teamStatTies    = "ties"
	teamStatPoints  = "points"
	teamStatRanking = "ranking"
)

var teamComparisonKeys = []comparison.StatKey{
	{Key: teamStatWins, Label: "Wins"},
	{Key: teamStatLosses, Label: "Losses"},
	{Key: teamStatTies, Label: "Ties"},
	{Key: teamStatPoints, Label: "Points"},
	{Key: teamStatRanking, Label: "Ranking"},
}

type PlayerComparison struct {
	Left      player.Player
	Right     player.Player
	Rows      []comparison.Row
	LeftWins  int
	RightWins int
}

type TeamComparison struct {
	Left      team.Team
	Right     team.Team
	Rows      []comparison.Row
	LeftWins  int
	RightWins int
}

type ComparisonService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	maxFetchers int
}

func NewComparisonService(teamRepo team.Repository, playerRepo player.Repository) *ComparisonService {
	return &ComparisonService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		maxFetchers: 4,
	}
}

// ComparePlayers compares two players of sportName. Stat keys follow the
// left player's stat shape.
func (s *ComparisonService) ComparePlayers(ctx context.Context, sportName string, leftID, rightID int64) (PlayerComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.ComparePlayers",
		attribute.String("sport", sportName),
		attribute.Int64("left_id", leftID),
		attribute.Int64("right_id", rightID),
	)
	defer span.End()

	if err := validatePair(sportName, leftID, rightID); err != nil {
		return PlayerComparison{}, err
	}

	teams, err := s.teamRepo.ListBySport(ctx, strings.TrimSpace(sportName))
	if err != nil {
		return PlayerComparison{}, fmt.Errorf("list teams by sport: %w", err)
	}
	if len(teams) == 0 {
		return PlayerComparison{}, fmt.Errorf("%w: %s", ErrUnknownSport, sportName)
	}

	rosters, err := s.loadRosters(ctx, teams)
	if err != nil {
		return PlayerComparison{}, err
	}

	left, leftOK := findPlayer(rosters, leftID)
	right, rightOK := findPlayer(rosters, rightID)
	if !leftOK || !rightOK {
		return PlayerComparison{}, fmt.Errorf("%w: player not found in sport=%s", ErrNotFound, sportName)
	}

	leftStats := left.StatsOrGeneric()
	rows := comparison.Table(
		leftStats.Values(),
		right.StatsOrGeneric().Values(),
		player.ComparisonKeys(leftStats.Shape()),
	)
	leftWins, rightWins := comparison.Tally(rows)

	return PlayerComparison{
		Left:      left,
		Right:     right,
		Rows:      rows,
		LeftWins:  leftWins,
		RightWins: rightWins,
	}, nil
}

// CompareTeams compares the season records of two teams of sportName.
func (s *ComparisonService) CompareTeams(ctx context.Context, sportName string, leftID, rightID int64) (TeamComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.CompareTeams",
		attribute.String("sport", sportName),
		attribute.Int64("left_id", leftID),
		attribute.Int64("right_id", rightID),
	)
	defer span.End()

	if err := validatePair(sportName, leftID, rightID); err != nil {
		return TeamComparison{}, err
	}

	teams, err := s.teamRepo.ListBySport(ctx, strings.TrimSpace(sportName))
	if err != nil {
		return TeamComparison{}, fmt.Errorf("list teams by sport: %w", err)
	}

	var left, right team.Team
	var leftOK, rightOK bool
	for _, item := range teams {
		switch item.ID {
		case leftID:
			left, leftOK = item, true
		case rightID:
			right, rightOK = item, true
		}
	}
	if !leftOK || !rightOK {
		return TeamComparison{}, fmt.Errorf("%w: team not found in sport=%s", ErrNotFound, sportName)
	}

	rows := comparison.Table(teamStatValues(left.Stats), teamStatValues(right.Stats), teamComparisonKeys)
	leftWins, rightWins := comparison.Tally(rows)

	return TeamComparison{
		Left:      left,
		Right:     right,
		Rows:      rows,
		LeftWins:  leftWins,
		RightWins: rightWins,
	}, nil
}

func (s *ComparisonService) loadRosters(ctx context.Context, teams []team.Team) ([][]player.Player, error) {
	p := pool.NewWithResults[[]player.Player]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(s.maxFetchers)

	for _, item := range teams {
		teamName := item.Name
		p.Go(func(ctx context.Context) ([]player.Player, error) {
			players, err := s.playerRepo.ListByTeam(ctx, teamName)
			if err != nil {
				return nil, fmt.Errorf("list players by team=%s: %w", teamName, err)
			}
			return players, nil
		})
	}

	return p.Wait()
}

func validatePair(sportName string, leftID, rightID int64) error {
	if strings.TrimSpace(sportName) == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if leftID <= 0 || rightID <= 0 {
		return fmt.Errorf("%w: both ids must be greater than zero", ErrInvalidInput)
	}
	if leftID == rightID {
		return fmt.Errorf("%w: cannot compare an entry with itself", ErrInvalidInput)
	}
	return nil
}

func findPlayer(rosters [][]player.Player, id int64) (player.Player, bool) {
	for _, roster := range rosters {
		for _, item := range roster {
			if item.ID == id {
				return item, true
			}
		}
	}
	return player.Player{}, false
}

func teamStatValues(stats team.Stats) map[string]comparison.Value {
	var ties *float64
	if stats.Ties != nil {
		v := float64(*stats.Ties)
		ties = &v
	}

	return map[string]comparison.Value{
		teamStatWins:    comparison.Number(float64(stats.Wins)),
		teamStatLosses:  comparison.Number(float64(stats.Losses)),
		teamStatTies:    comparison.Optional(ties),
		teamStatPoints:  comparison.Optional(stats.Points),
		teamStatRanking: comparison.Number(float64(stats.Ranking)),
	}
}
