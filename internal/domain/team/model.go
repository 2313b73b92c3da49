package team

import (
	"fmt"
	"strings"
)

// Team is a club competing in one sport.
type Team struct {
	ID          int64
	Name        string
	LogoURL     string
	Sport       string
	Description string
	Stats       Stats
}

// Stats is the season record of a team. Ties and Points are only reported
// by sports that track them.
type Stats struct {
	Wins    int
	Losses  int
	Ties    *int
	Points  *float64
	Ranking int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Sport) == "" {
		return fmt.Errorf("team sport is required")
	}

	return nil
}

// BelongsTo reports whether the team plays sportName, compared case-insensitively.
func (t Team) BelongsTo(sportName string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Sport), strings.TrimSpace(sportName))
}
