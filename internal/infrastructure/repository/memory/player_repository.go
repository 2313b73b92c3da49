package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]player.Player
	latency       Latency
}

func NewPlayerRepository(players []player.Player, latency Latency) *PlayerRepository {
	playersByTeam := make(map[string][]player.Player)
	for _, item := range players {
		playersByTeam[item.Team] = append(playersByTeam[item.Team], item)
	}

	return &PlayerRepository{playersByTeam: playersByTeam, latency: latency}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamName string) ([]player.Player, error) {
	if err := r.latency.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamName]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)
	return out, nil
}
