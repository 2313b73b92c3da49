package player

import (
	"fmt"
	"strings"
)

// Player is an athlete listed under one team.
type Player struct {
	ID       int64
	Name     string
	ImageURL string
	Team     string
	Position string
	Stats    Stats
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}

	return nil
}

// StatsOrGeneric returns the player's stats, falling back to an empty
// generic line when none were ingested.
func (p Player) StatsOrGeneric() Stats {
	if p.Stats == nil {
		return GenericStats{}
	}
	return p.Stats
}
