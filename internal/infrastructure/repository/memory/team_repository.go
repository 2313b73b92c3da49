package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
)

type TeamRepository struct {
	mu           sync.RWMutex
	teamsBySport map[string][]team.Team
	latency      Latency
}

func NewTeamRepository(teams []team.Team, latency Latency) *TeamRepository {
	teamsBySport := make(map[string][]team.Team)
	for _, item := range teams {
		key := sport.NormalizeKey(item.Sport)
		teamsBySport[key] = append(teamsBySport[key], item)
	}

	return &TeamRepository{teamsBySport: teamsBySport, latency: latency}
}

func (r *TeamRepository) ListBySport(ctx context.Context, sportName string) ([]team.Team, error) {
	if err := r.latency.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsBySport[sport.NormalizeKey(sportName)]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)
	return out, nil
}
